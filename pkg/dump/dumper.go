package dump

import (
	"os"

	"github.com/wilyoctopus/DumpJson/pkg/metrics"
)

const (
	sinkNameDebug   = "debug"
	sinkNameConsole = "console"
)

// Dumper 将对象序列化为 JSON 并写入当前可用的诊断输出目标。
//
// Dumper 本身无状态（探测缓存在 Probe 内部），可被任意多个
// goroutine 并发调用；唯一的共享可变状态是 Settings，见其文档。
type Dumper struct {
	settings *Settings
	probe    Probe
	console  Sink
	debug    Sink

	enableMetrics bool
}

// Option 用于定制 Dumper 的依赖注入参数。
type Option func(*Dumper)

// WithProbe 替换可用性探测器，测试中配合 FixedProbe 使用。
func WithProbe(p Probe) Option {
	return func(d *Dumper) {
		if p != nil {
			d.probe = p
		}
	}
}

// WithConsoleSink 替换 console 输出目标。
func WithConsoleSink(s Sink) Option {
	return func(d *Dumper) {
		if s != nil {
			d.console = s
		}
	}
}

// WithDebugSink 替换 debug 输出目标。
func WithDebugSink(s Sink) Option {
	return func(d *Dumper) {
		if s != nil {
			d.debug = s
		}
	}
}

// WithMetrics 开启 Prometheus 指标统计。
// 库场景默认关闭；开启前调用方需自行完成 metrics.Register。
func WithMetrics(enabled bool) Option {
	return func(d *Dumper) {
		d.enableMetrics = enabled
	}
}

// New 创建 Dumper。
//
// settings 为 nil 时使用默认配置；默认 console 输出到 stdout，
// debug 输出经全局 zap Logger 的 Debug 级别。
func New(settings *Settings, opts ...Option) *Dumper {
	if settings == nil {
		settings = NewSettings()
	}

	d := &Dumper{
		settings: settings,
		probe:    RuntimeProbe(),
		console:  NewWriterSink(os.Stdout),
		debug:    NewLogSink(nil),
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Settings 返回该 Dumper 关联的配置对象。
func (d *Dumper) Settings() *Settings {
	return d.settings
}

// Write 执行一次 dump：
//
//  1. 两个输出目标都未启用时直接返回，不做序列化（零副作用）；
//  2. 序列化当前对象，失败时原样返回错误且不写任何输出；
//  3. label 非空时先把 label 逐目标写出（顺序：debug、console）；
//  4. 再按相同顺序写出 JSON 文本。
//
// 输出目标不可用永远不是错误；唯一会返回的错误是序列化失败
// （merr.ErrSerializationFailed）。
func (d *Dumper) Write(v any, label string) error {
	debugOn := d.settings.DebugOverride.enabled(d.probe.DebuggerAttached)
	consoleOn := d.settings.ConsoleOverride.enabled(d.probe.ConsoleAvailable)

	if !debugOn && !consoleOn {
		if d.enableMetrics {
			metrics.DumpsSuppressed.Inc()
		}
		return nil
	}

	data, err := d.settings.serializer().Marshal(v)
	if err != nil {
		if d.enableMetrics {
			metrics.SerializationErrors.Inc()
		}
		return err
	}

	if d.enableMetrics {
		metrics.SerializedBytes.Add(float64(len(data)))
	}

	if label != "" {
		d.writeLine(label, debugOn, consoleOn)
	}
	if len(data) > 0 {
		d.writeLine(string(data), debugOn, consoleOn)
	}
	return nil
}

// writeLine 将一行文本写入所有已启用的目标，固定先 debug 后 console。
func (d *Dumper) writeLine(line string, debugOn, consoleOn bool) {
	if debugOn {
		d.debug.WriteLine(line)
		if d.enableMetrics {
			metrics.SinkWrites.WithLabelValues(sinkNameDebug).Inc()
		}
	}
	if consoleOn {
		d.console.WriteLine(line)
		if d.enableMetrics {
			metrics.SinkWrites.WithLabelValues(sinkNameConsole).Inc()
		}
	}
}
