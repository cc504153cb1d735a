//go:build !linux

package noise

import (
	"syscall"
	"time"
)

type getpidCaller struct{}

func NewSyscallCaller() Caller {
	return getpidCaller{}
}

func (getpidCaller) Call() {
	_ = syscall.Getpid()
}

type timeSleeper struct{}

func NewSyscallSleeper() Sleeper {
	return timeSleeper{}
}

func (timeSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
