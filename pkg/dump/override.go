package dump

import (
	"strings"

	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

// Override 是单个输出目标的三态开关。
//
// 三种状态：
//   - Auto    ：按运行时探测结果决定是否启用；
//   - ForceOn ：无条件启用，忽略探测结果；
//   - ForceOff：无条件禁用，忽略探测结果。
type Override int32

const (
	Auto Override = iota
	ForceOn
	ForceOff
)

var overrideNames = map[Override]string{
	Auto:     "auto",
	ForceOn:  "on",
	ForceOff: "off",
}

func (o Override) String() string {
	if name, ok := overrideNames[o]; ok {
		return name
	}
	return "auto"
}

// enabled 按 Force-on > Force-off > 探测 的优先级折算最终开关。
// probe 仅在 Auto 状态下才会被调用，避免强制状态下触发探测副作用。
func (o Override) enabled(probe func() bool) bool {
	switch o {
	case ForceOn:
		return true
	case ForceOff:
		return false
	default:
		return probe()
	}
}

// ParseOverride 解析配置文件中的三态开关取值。
// 合法取值为 on/off/auto（不区分大小写），其余取值返回 merr.ErrParameterInvalid。
func ParseOverride(s string) (Override, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return ForceOn, nil
	case "off":
		return ForceOff, nil
	case "auto", "":
		return Auto, nil
	default:
		return Auto, merr.WrapErrParameterInvalid("on/off/auto", s)
	}
}
