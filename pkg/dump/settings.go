package dump

import (
	"github.com/samber/lo"

	"github.com/wilyoctopus/DumpJson/pkg/serializer"
	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

// defaultJSON 为未显式配置时使用的序列化器（两空格缩进）。
var defaultJSON = serializer.NewJSON(serializer.DefaultOptions())

// Settings 保存 dump 行为的全部可变配置：
// 序列化参数，以及 console/debug 两个输出目标的三态开关。
//
// Settings 生命周期与进程相同，内部不加锁：
// 应在并发 dump 开始之前完成配置，之后只读；
// 并发修改的行为为“最后写入者胜出”，由调用方自行避免竞争。
type Settings struct {
	// ConsoleOverride 控制 console 输出目标。
	ConsoleOverride Override
	// DebugOverride 控制 debug 输出目标。
	DebugOverride Override

	opts *serializer.Options
	ser  serializer.Serializer
}

// NewSettings 创建一份默认配置：
// 两个输出目标均为 Auto，序列化使用两空格缩进。
func NewSettings() *Settings {
	s := &Settings{}
	_ = s.SetSerializerOptions(lo.ToPtr(serializer.DefaultOptions()))
	return s
}

// SetSerializerOptions 更新序列化参数。
//
// opts 为 nil 时返回 merr.ErrParameterMissing，且保留之前的配置，
// 绝不会悄悄重置为默认值。
func (s *Settings) SetSerializerOptions(opts *serializer.Options) error {
	if opts == nil {
		return merr.WrapErrParameterMissing("opts", "previous serializer options retained")
	}

	s.opts = opts
	s.ser = serializer.NewJSON(*opts)
	return nil
}

// SerializerOptions 返回最近一次成功设置的序列化参数。
// 从未设置时返回默认配置。
func (s *Settings) SerializerOptions() serializer.Options {
	if s.opts == nil {
		return serializer.DefaultOptions()
	}
	return *s.opts
}

// serializer 返回当前生效的序列化器。
// 零值 Settings 直接可用，回落到默认序列化器。
func (s *Settings) serializer() serializer.Serializer {
	if s.ser == nil {
		return defaultJSON
	}
	return s.ser
}
