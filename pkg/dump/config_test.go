package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wilyoctopus/DumpJson/pkg/serializer"
	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

type ConfigSuite struct {
	suite.Suite
}

func (s *ConfigSuite) writeFile(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigSuite) TestLoadYAML() {
	path := s.writeFile("dump.yaml", `
console: on
debug: off
serializer:
  indent: "\t"
  sort-map-keys: true
`)

	settings, err := LoadSettings(path)
	s.NoError(err)
	s.Equal(ForceOn, settings.ConsoleOverride)
	s.Equal(ForceOff, settings.DebugOverride)
	s.Equal("\t", settings.SerializerOptions().Indent)
	s.True(settings.SerializerOptions().SortMapKeys)
}

func (s *ConfigSuite) TestLoadJSON() {
	path := s.writeFile("dump.json", `{"console": "auto", "debug": "on"}`)

	settings, err := LoadSettings(path)
	s.NoError(err)
	s.Equal(Auto, settings.ConsoleOverride)
	s.Equal(ForceOn, settings.DebugOverride)
	// serializer 块缺省时保持默认缩进配置。
	s.Equal(serializer.DefaultOptions(), settings.SerializerOptions())
}

func (s *ConfigSuite) TestInvalidOverride() {
	path := s.writeFile("dump.yaml", "console: maybe\n")

	_, err := LoadSettings(path)
	s.ErrorIs(err, merr.ErrConfigInvalid)
}

func (s *ConfigSuite) TestMissingFile() {
	_, err := LoadSettings(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.ErrorIs(err, merr.ErrConfigNotFound)
}

func (s *ConfigSuite) TestFileConfigDefaults() {
	fc := &FileConfig{}

	settings, err := fc.Settings()
	s.NoError(err)
	s.Equal(Auto, settings.ConsoleOverride)
	s.Equal(Auto, settings.DebugOverride)
	s.Equal(serializer.DefaultOptions(), settings.SerializerOptions())
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}
