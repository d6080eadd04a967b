package dump

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProbeSuite struct {
	suite.Suite
}

func (s *ProbeSuite) TestFixedProbe() {
	s.True(FixedProbe{Console: true}.ConsoleAvailable())
	s.False(FixedProbe{Console: true}.DebuggerAttached())
	s.True(FixedProbe{Debugger: true}.DebuggerAttached())
	s.False(FixedProbe{}.ConsoleAvailable())
}

func (s *ProbeSuite) TestRuntimeProbeStable() {
	p := RuntimeProbe()

	// 探测结果在进程内缓存，重复调用必须返回相同结果。
	s.Equal(p.ConsoleAvailable(), p.ConsoleAvailable())
	s.Equal(p.DebuggerAttached(), p.DebuggerAttached())
}

func (s *ProbeSuite) TestRuntimeProbeShared() {
	s.Same(RuntimeProbe(), RuntimeProbe())
}

func (s *ProbeSuite) TestProbeNeverPanics() {
	s.NotPanics(func() {
		probeConsole()
		probeDebugger()
		tracerPID()
		parentIsDebugger()
	})
}

func TestProbe(t *testing.T) {
	suite.Run(t, new(ProbeSuite))
}
