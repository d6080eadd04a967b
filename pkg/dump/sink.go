package dump

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wilyoctopus/DumpJson/pkg/log"
)

// Sink 是面向行文本的诊断输出目标。
//
// 写入为单次尽力而为：不缓冲、不重试，失败也不向调用方上抛，
// 因此接口不返回 error。
type Sink interface {
	WriteLine(line string)
}

// WriterSink 将行写入任意 io.Writer，默认用于 console 输出。
type WriterSink struct {
	w io.Writer
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink 创建基于 io.Writer 的 Sink。
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) {
	if s.w == nil {
		return
	}
	// 写失败即放弃，诊断输出不值得为此中断调用方。
	fmt.Fprintln(s.w, line)
}

// LogSink 将行以 Debug 级别写入 zap Logger，默认用于 debug 输出。
type LogSink struct {
	lg *zap.Logger
}

var _ Sink = (*LogSink)(nil)

// NewLogSink 创建基于 zap 的 Sink。
// lg 为 nil 时每次写入都使用当前全局 Logger，
// 以便 ReplaceGlobals 之后的写入自动跟随新 Logger。
func NewLogSink(lg *zap.Logger) *LogSink {
	return &LogSink{lg: lg}
}

func (s *LogSink) WriteLine(line string) {
	lg := s.lg
	if lg == nil {
		lg = log.L()
	}
	lg.Debug(line)
}
