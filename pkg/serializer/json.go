package serializer

import (
	"github.com/bytedance/sonic"

	"github.com/wilyoctopus/DumpJson/internal/json"
	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

// Options 为 JSON 序列化的可调参数，直接透传给底层 JSON 引擎。
//
// 零值表示紧凑输出；诊断输出通常使用 DefaultOptions 的缩进配置。
type Options struct {
	// Prefix 为每行输出的前缀，仅在缩进输出时生效。
	Prefix string
	// Indent 为缩进字符串，为空表示紧凑输出（单行）。
	Indent string
	// SortMapKeys 表示 map 的 key 是否按字典序输出。
	SortMapKeys bool
	// EscapeHTML 表示是否对 HTML 敏感字符进行转义。
	EscapeHTML bool
	// NoNullSliceOrMap 表示 nil 的 slice/map 是否输出为 []/{} 而非 null。
	NoNullSliceOrMap bool
}

// DefaultOptions 返回诊断输出的默认配置：两空格缩进的多行 JSON。
func DefaultOptions() Options {
	return Options{
		Indent: "  ",
	}
}

// indented 表示当前配置是否为缩进输出。
func (o Options) indented() bool {
	return o.Indent != "" || o.Prefix != ""
}

// JSONSerializer 基于 bytedance/sonic 实现 JSON 编解码。
//
// 零值可用，等价于 internal/json 的默认（紧凑）行为；
// 带参数的实例请通过 NewJSON 构造，配置在构造时冻结，之后并发只读。
type JSONSerializer struct {
	opts Options
	api  sonic.API
}

// 编译期断言：确保 JSONSerializer 实现了 Serializer 接口。
var _ Serializer = (*JSONSerializer)(nil)

// NewJSON 根据给定配置构造 JSONSerializer。
// sonic 配置只在此处 Froze 一次，避免每次序列化重复构建。
func NewJSON(opts Options) *JSONSerializer {
	cfg := sonic.Config{
		SortMapKeys:      opts.SortMapKeys,
		EscapeHTML:       opts.EscapeHTML,
		NoNullSliceOrMap: opts.NoNullSliceOrMap,
	}

	return &JSONSerializer{
		opts: opts,
		api:  cfg.Froze(),
	}
}

// Options 返回构造时的配置快照。
func (s *JSONSerializer) Options() Options {
	return s.opts
}

func (s *JSONSerializer) Marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case s.api == nil:
		data, err = json.Marshal(v)
	case s.opts.indented():
		data, err = s.api.MarshalIndent(v, s.opts.Prefix, s.opts.Indent)
	default:
		data, err = s.api.Marshal(v)
	}

	if err != nil {
		return nil, merr.WrapErrSerializationFailed(err)
	}
	return data, nil
}

func (s *JSONSerializer) Unmarshal(data []byte, v any) error {
	var err error
	if s.api == nil {
		err = json.Unmarshal(data, v)
	} else {
		err = s.api.Unmarshal(data, v)
	}

	if err != nil {
		return merr.WrapErrSerializationFailed(err)
	}
	return nil
}
