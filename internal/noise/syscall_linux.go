//go:build linux

package noise

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

type getpidCaller struct{}

// NewSyscallCaller returns the getpid caller used by default.
func NewSyscallCaller() Caller {
	return getpidCaller{}
}

// Call issues a raw getpid; the pid is discarded.
func (getpidCaller) Call() {
	_ = unix.Getpid()
}

// nanosleeper keeps the timespec for the last period so a fixed-period loop
// splits it into seconds and nanoseconds only once.
type nanosleeper struct {
	period time.Duration
	ts     unix.Timespec
}

// NewSyscallSleeper returns a nanosleep sleeper. It is not safe for
// concurrent use; give each emitter its own.
func NewSyscallSleeper() Sleeper {
	return &nanosleeper{}
}

// Sleep calls nanosleep once as a raw syscall, like getpid, so the runtime
// does not hand off the P or wake sysmon around it. EINTR and the unslept
// remainder are ignored.
func (s *nanosleeper) Sleep(d time.Duration) {
	if d != s.period {
		s.period = d
		s.ts = unix.NsecToTimespec(d.Nanoseconds())
	}
	_, _, _ = unix.RawSyscall(unix.SYS_NANOSLEEP, uintptr(unsafe.Pointer(&s.ts)), 0, 0)
}
