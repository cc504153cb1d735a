package noise

import (
	"context"
	"time"

	"github.com/amaumene/syscallnoise/internal/domain"
)

// Caller issues one lightweight system call.
type Caller interface {
	Call()
}

// Sleeper suspends the calling thread for roughly d.
type Sleeper interface {
	Sleep(d time.Duration)
}

type Emitter struct {
	rateHz  int
	caller  Caller
	sleeper Sleeper
}

type Option func(*Emitter)

// WithCaller replaces the default getpid caller.
func WithCaller(c Caller) Option {
	return func(e *Emitter) {
		e.caller = c
	}
}

// WithSleeper replaces the default nanosleep sleeper.
func WithSleeper(s Sleeper) Option {
	return func(e *Emitter) {
		e.sleeper = s
	}
}

// NewEmitter builds an emitter for rateHz calls per second. Negative rates
// are treated as zero.
func NewEmitter(rateHz int, opts ...Option) *Emitter {
	if rateHz < 0 {
		rateHz = 0
	}
	e := &Emitter{
		rateHz:  rateHz,
		caller:  NewSyscallCaller(),
		sleeper: NewSyscallSleeper(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emitter) RateHz() int {
	return e.rateHz
}

func (e *Emitter) Mode() domain.Mode {
	return ModeFor(e.rateHz)
}

// Run emits until ctx is done. Callers that never cancel ctx get a loop that
// lasts for the life of the process.
func (e *Emitter) Run(ctx context.Context) {
	if e.rateHz == 0 {
		e.runBusy(ctx)
		return
	}
	e.runPaced(ctx, Period(e.rateHz))
}

func (e *Emitter) runBusy(ctx context.Context) {
	done := ctx.Done()
	for {
		select {
		case <-done:
			return
		default:
		}
		e.caller.Call()
	}
}

func (e *Emitter) runPaced(ctx context.Context, period time.Duration) {
	done := ctx.Done()
	for {
		select {
		case <-done:
			return
		default:
		}
		e.caller.Call()
		e.sleeper.Sleep(period)
	}
}

// Period returns the pause between calls for a positive rate, never less
// than one nanosecond.
func Period(rateHz int) time.Duration {
	if rateHz <= 0 {
		return 0
	}
	ns := int64(time.Second) / int64(rateHz)
	if ns <= 0 {
		ns = 1
	}
	return time.Duration(ns)
}

func ModeFor(rateHz int) domain.Mode {
	if rateHz <= 0 {
		return domain.ModeBusy
	}
	return domain.ModePaced
}
