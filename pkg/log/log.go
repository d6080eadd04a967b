// Copyright 2019 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _globalL, _globalP, _globalS atomic.Value

func init() {
	l, p := newStdLogger()

	_globalL.Store(l)
	_globalP.Store(p)
	_globalS.Store(l.Sugar())
}

// ZapProperties 记录全局 Logger 关联的可变属性。
type ZapProperties struct {
	Core   zapcore.Core
	Syncer zapcore.WriteSyncer
	Level  zap.AtomicLevel
}

// newStdLogger 创建输出到 stderr 的默认 Logger，供 init 和测试使用。
func newStdLogger() (*zap.Logger, *ZapProperties) {
	conf := &Config{Level: "debug", Stdout: false}
	lg, prop, _ := newLogger(conf, zapcore.AddSync(os.Stderr))
	return lg, prop
}

// New 根据配置创建 Logger。
// 当文件日志与 Stdout 同时开启时，日志会同时写入两者。
func New(cfg *Config) (*zap.Logger, *ZapProperties, error) {
	cfg.normalize()

	var syncers []zapcore.WriteSyncer
	if cfg.Stdout {
		syncers = append(syncers, zapcore.AddSync(os.Stdout))
	}
	if cfg.File.Filename != "" {
		fileOut, err := initFileLog(&cfg.File)
		if err != nil {
			return nil, nil, err
		}
		syncers = append(syncers, zapcore.AddSync(fileOut))
	}
	if len(syncers) == 0 {
		syncers = append(syncers, zapcore.AddSync(os.Stderr))
	}

	return newLogger(cfg, zapcore.NewMultiWriteSyncer(syncers...))
}

func newLogger(cfg *Config, output zapcore.WriteSyncer) (*zap.Logger, *ZapProperties, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, errors.Wrapf(err, "unknown log level %q", cfg.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.DisableTimestamp {
		encCfg.TimeKey = ""
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "text", "":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, nil, errors.Newf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, output, level)

	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	lg := zap.New(core, opts...)
	prop := &ZapProperties{
		Core:   core,
		Syncer: output,
		Level:  level,
	}
	return lg, prop, nil
}

// initFileLog 初始化基于 lumberjack 的文件日志输出。
func initFileLog(cfg *FileLogConfig) (*lumberjack.Logger, error) {
	filename := cfg.Filename
	if cfg.RootPath != "" {
		filename = filepath.Join(cfg.RootPath, filename)
	}
	if st, err := os.Stat(filename); err == nil && st.IsDir() {
		return nil, errors.New("can't use directory as log file name")
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxDays,
		LocalTime:  true,
	}, nil
}

// ReplaceGlobals 替换全局 Logger 及其属性。
func ReplaceGlobals(logger *zap.Logger, props *ZapProperties) {
	_globalL.Store(logger)
	_globalS.Store(logger.Sugar())
	_globalP.Store(props)
}

// L 返回全局 Logger，可通过 ReplaceGlobals 替换。
// 出于性能考虑，并发调用 ReplaceGlobals 与 L 时不加锁，
// 因此刚完成替换时短暂取到旧值是允许的。
func L() *zap.Logger {
	return _globalL.Load().(*zap.Logger)
}

// S 返回全局 SugaredLogger，可通过 ReplaceGlobals 替换。
func S() *zap.SugaredLogger {
	return _globalS.Load().(*zap.SugaredLogger)
}

// Prop 返回全局 Logger 的属性。
func Prop() *ZapProperties {
	return _globalP.Load().(*ZapProperties)
}

// SetLevel 动态调整全局日志级别。
func SetLevel(l zapcore.Level) {
	Prop().Level.SetLevel(l)
}

// GetLevel 返回当前全局日志级别。
func GetLevel() zapcore.Level {
	return Prop().Level.Level()
}

// Debug 在 Debug 级别输出一条日志。
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info 在 Info 级别输出一条日志。
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn 在 Warn 级别输出一条日志。
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error 在 Error 级别输出一条日志。
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// With 基于全局 Logger 创建携带固定字段的子 Logger。
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync 刷新全局 Logger 的缓冲。
func Sync() error {
	return L().Sync()
}
