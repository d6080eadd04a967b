package dump

import (
	"go.uber.org/atomic"

	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

// defaultDumper 为包级 Dump 系列函数使用的全局 Dumper，可整体替换。
var defaultDumper = atomic.NewPointer(New(nil))

// Default 返回当前的全局 Dumper。
func Default() *Dumper {
	return defaultDumper.Load()
}

// SetDefault 替换全局 Dumper。
// d 为 nil 时返回 merr.ErrParameterMissing 并保留原值。
func SetDefault(d *Dumper) error {
	if d == nil {
		return merr.WrapErrParameterMissing("d", "previous default dumper retained")
	}
	defaultDumper.Store(d)
	return nil
}

// Dump 将 v 以 JSON 形式写入当前可用的诊断输出，并原样返回 v，
// 便于在表达式中链式插入：
//
//	resp := handle(dump.Dump(req))
//
// 序列化失败会 panic（诊断场景下这几乎总是调用方的使用错误，
// 静默吞掉反而会掩盖问题）；需要显式处理错误时使用 TryDump。
func Dump[T any](v T) T {
	return DumpLabel(v, "")
}

// DumpLabel 与 Dump 相同，但先输出一行 label 再输出 JSON 文本。
// label 为空时不输出 label 行。
func DumpLabel[T any](v T, label string) T {
	return DumpWith(Default(), v, label)
}

// TryDump 与 DumpLabel 相同，但序列化失败时返回错误而非 panic。
// 无论成功与否都返回原值 v。
func TryDump[T any](v T, label string) (T, error) {
	return v, Default().Write(v, label)
}

// DumpWith 使用指定 Dumper 执行链式 dump，多实例或测试场景使用。
func DumpWith[T any](d *Dumper, v T, label string) T {
	if err := d.Write(v, label); err != nil {
		panic(err)
	}
	return v
}
