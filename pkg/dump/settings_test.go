package dump

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wilyoctopus/DumpJson/pkg/serializer"
	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

type SettingsSuite struct {
	suite.Suite
}

func (s *SettingsSuite) TestDefaults() {
	settings := NewSettings()

	s.Equal(Auto, settings.ConsoleOverride)
	s.Equal(Auto, settings.DebugOverride)
	s.Equal(serializer.DefaultOptions(), settings.SerializerOptions())
}

func (s *SettingsSuite) TestZeroValueUsable() {
	var settings Settings

	s.Equal(serializer.DefaultOptions(), settings.SerializerOptions())
	s.NotNil(settings.serializer())
}

func (s *SettingsSuite) TestSetSerializerOptions() {
	settings := NewSettings()

	opts := serializer.Options{Indent: "\t", SortMapKeys: true}
	s.NoError(settings.SetSerializerOptions(&opts))
	s.Equal(opts, settings.SerializerOptions())
}

func (s *SettingsSuite) TestSetSerializerOptionsNilRetainsPrevious() {
	settings := NewSettings()

	opts := serializer.Options{Indent: "\t"}
	s.NoError(settings.SetSerializerOptions(&opts))

	// nil 必须报错，且绝不能把已有配置重置回默认值。
	s.ErrorIs(settings.SetSerializerOptions(nil), merr.ErrParameterMissing)
	s.Equal(opts, settings.SerializerOptions())
}

type OverrideSuite struct {
	suite.Suite
}

func (s *OverrideSuite) TestString() {
	s.Equal("auto", Auto.String())
	s.Equal("on", ForceOn.String())
	s.Equal("off", ForceOff.String())
	s.Equal("auto", Override(42).String())
}

func (s *OverrideSuite) TestParse() {
	cases := []struct {
		input string
		want  Override
	}{
		{"on", ForceOn},
		{"ON", ForceOn},
		{"off", ForceOff},
		{" Off ", ForceOff},
		{"auto", Auto},
		{"", Auto},
	}

	for _, c := range cases {
		got, err := ParseOverride(c.input)
		s.NoError(err)
		s.Equal(c.want, got, "input=%q", c.input)
	}

	_, err := ParseOverride("maybe")
	s.ErrorIs(err, merr.ErrParameterInvalid)
}

func (s *OverrideSuite) TestEnabled() {
	probeCalls := 0
	probe := func() bool {
		probeCalls++
		return true
	}

	s.True(ForceOn.enabled(probe))
	s.False(ForceOff.enabled(probe))
	s.Zero(probeCalls)

	s.True(Auto.enabled(probe))
	s.Equal(1, probeCalls)
}

func TestSettings(t *testing.T) {
	suite.Run(t, new(SettingsSuite))
}

func TestOverride(t *testing.T) {
	suite.Run(t, new(OverrideSuite))
}
