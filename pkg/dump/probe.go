package dump

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/atomic"
)

// Probe 探测运行环境中各输出目标是否可用。
//
// 探测永远不会返回错误：探测过程中的任何失败都视为“目标不可用”，
// 保证在无控制台的宿主（服务、容器、CI）中静默降级而非报错。
type Probe interface {
	// ConsoleAvailable 判断进程是否挂有可写的控制台。
	ConsoleAvailable() bool

	// DebuggerAttached 判断是否有调试器附加到当前进程。
	DebuggerAttached() bool
}

// runtimeProbe 为真实环境探测实现。
// 两项探测各自只在首次调用时解析一次，之后返回缓存结果。
type runtimeProbe struct {
	consoleOnce sync.Once
	console     atomic.Bool

	debugOnce sync.Once
	debug     atomic.Bool
}

var _ Probe = (*runtimeProbe)(nil)

var runtimeProbeInstance = &runtimeProbe{}

// RuntimeProbe 返回进程级共享的运行时探测器。
func RuntimeProbe() Probe {
	return runtimeProbeInstance
}

func (p *runtimeProbe) ConsoleAvailable() bool {
	p.consoleOnce.Do(func() {
		p.console.Store(probeConsole())
	})
	return p.console.Load()
}

func (p *runtimeProbe) DebuggerAttached() bool {
	p.debugOnce.Do(func() {
		p.debug.Store(probeDebugger())
	})
	return p.debug.Load()
}

// probeConsole 判断 stdout 是否连接到终端（含 Cygwin/MSYS 伪终端）。
func probeConsole() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// probeDebugger 判断是否有调试器附加。
//
// 优先读取 /proc/self/status 的 TracerPid（仅 Linux 有效），
// 读不到时退化为检查父进程是否为已知调试器。
func probeDebugger() bool {
	if tracerPID() != 0 {
		return true
	}
	return parentIsDebugger()
}

// tracerPID 返回正在 ptrace 当前进程的 PID，无法获取时返回 0。
func tracerPID() int {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:")))
		if err != nil {
			return 0
		}
		return pid
	}
	return 0
}

// debuggerNames 为常见调试器宿主的进程名。
var debuggerNames = map[string]struct{}{
	"dlv":         {},
	"debugserver": {},
	"gdb":         {},
}

// parentIsDebugger 检查父进程是否为已知调试器。
func parentIsDebugger() bool {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return false
	}

	parent, err := proc.Parent()
	if err != nil || parent == nil {
		return false
	}

	name, err := parent.Name()
	if err != nil {
		return false
	}

	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	_, ok := debuggerNames[name]
	return ok
}

// FixedProbe 返回固定探测结果，供测试确定性地强制两个目标的可用性。
type FixedProbe struct {
	Console  bool
	Debugger bool
}

var _ Probe = FixedProbe{}

func (p FixedProbe) ConsoleAvailable() bool {
	return p.Console
}

func (p FixedProbe) DebuggerAttached() bool {
	return p.Debugger
}
