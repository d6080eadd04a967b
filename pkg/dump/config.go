package dump

import (
	"github.com/samber/lo"

	"github.com/wilyoctopus/DumpJson/pkg/serializer"
	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
	zviper "github.com/wilyoctopus/DumpJson/pkg/util/viper"
)

// SerializerFileConfig 为配置文件中的序列化参数块。
type SerializerFileConfig struct {
	Prefix           string `mapstructure:"prefix" json:"prefix"`
	Indent           string `mapstructure:"indent" json:"indent"`
	SortMapKeys      bool   `mapstructure:"sort-map-keys" json:"sort-map-keys"`
	EscapeHTML       bool   `mapstructure:"escape-html" json:"escape-html"`
	NoNullSliceOrMap bool   `mapstructure:"no-null-slice-or-map" json:"no-null-slice-or-map"`
}

// FileConfig 描述可从 YAML/JSON 配置文件加载的 dump 设置。
//
// 示例（YAML）：
//
//	console: auto
//	debug: off
//	serializer:
//	  indent: "  "
//	  sort-map-keys: true
type FileConfig struct {
	// Console 为 console 输出目标的开关，取值 on/off/auto。
	Console string `mapstructure:"console" json:"console"`
	// Debug 为 debug 输出目标的开关，取值 on/off/auto。
	Debug string `mapstructure:"debug" json:"debug"`
	// Serializer 为序列化参数，整块缺省时使用默认缩进配置。
	Serializer *SerializerFileConfig `mapstructure:"serializer" json:"serializer"`
}

// Settings 将文件配置折算为可用的 Settings。
// 开关取值非法时返回 merr.ErrConfigInvalid。
func (fc *FileConfig) Settings() (*Settings, error) {
	s := NewSettings()

	consoleOverride, err := ParseOverride(fc.Console)
	if err != nil {
		return nil, merr.WrapErrConfigInvalid("console", fc.Console, err.Error())
	}
	s.ConsoleOverride = consoleOverride

	debugOverride, err := ParseOverride(fc.Debug)
	if err != nil {
		return nil, merr.WrapErrConfigInvalid("debug", fc.Debug, err.Error())
	}
	s.DebugOverride = debugOverride

	if fc.Serializer != nil {
		opts := serializer.Options{
			Prefix:           fc.Serializer.Prefix,
			Indent:           fc.Serializer.Indent,
			SortMapKeys:      fc.Serializer.SortMapKeys,
			EscapeHTML:       fc.Serializer.EscapeHTML,
			NoNullSliceOrMap: fc.Serializer.NoNullSliceOrMap,
		}
		if err := s.SetSerializerOptions(lo.ToPtr(opts)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// LoadSettings 从 YAML 或 JSON 配置文件加载 Settings。
func LoadSettings(path string) (*Settings, error) {
	cfg := zviper.New()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}

	fc := &FileConfig{}
	if err := cfg.Unmarshal(fc); err != nil {
		return nil, merr.WrapErrConfigInvalid("file", path, err.Error())
	}

	return fc.Settings()
}
