package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/domain"
	"github.com/amaumene/syscallnoise/internal/noise"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Request struct {
	Label   string
	Enabled bool
	RateHz  int
	Window  time.Duration

	// Caller and Sleeper default to the real system calls when nil.
	Caller  noise.Caller
	Sleeper noise.Sleeper
}

type Sampler struct {
	repo domain.RunRepository
}

// New returns a sampler. repo may be nil, in which case summaries are not
// recorded.
func New(repo domain.RunRepository) *Sampler {
	return &Sampler{repo: repo}
}

func (s *Sampler) Sample(ctx context.Context, req Request) (*domain.RunSummary, error) {
	if req.Window <= 0 {
		return nil, fmt.Errorf("sampling %q: %w", req.Label, domain.ErrInvalidWindow)
	}

	rateHz := config.Clamp(int64(req.RateHz))
	tally := &tally{caller: req.Caller, sleeper: req.Sleeper}
	if tally.caller == nil {
		tally.caller = noise.NewSyscallCaller()
	}
	if tally.sleeper == nil {
		tally.sleeper = noise.NewSyscallSleeper()
	}

	startedAt := time.Now()
	runCtx, cancel := context.WithTimeout(ctx, req.Window)
	defer cancel()

	if req.Enabled {
		noise.NewEmitter(rateHz, noise.WithCaller(tally), noise.WithSleeper(tally)).Run(runCtx)
	} else {
		<-runCtx.Done()
	}
	elapsed := time.Since(startedAt)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sampling %q interrupted: %w", req.Label, err)
	}

	run := summarize(req, rateHz, startedAt, elapsed, tally.calls, tally.pauses)

	log.WithFields(log.Fields{
		"component":  "sampler",
		"id":         run.ID,
		"label":      run.Label,
		"mode":       run.Mode,
		"calls":      run.Calls,
		"achievedHz": run.AchievedHz,
	}).Info("sample completed")

	if s.repo != nil {
		if err := s.repo.Insert(ctx, run); err != nil {
			return run, fmt.Errorf("recording run: %w", err)
		}
	}
	return run, nil
}

func summarize(req Request, rateHz int, startedAt time.Time, elapsed time.Duration, calls, pauses uint64) *domain.RunSummary {
	run := &domain.RunSummary{
		ID:        uuid.NewString(),
		Label:     req.Label,
		Enabled:   req.Enabled,
		RateHz:    rateHz,
		Mode:      noise.ModeFor(rateHz),
		Period:    noise.Period(rateHz),
		StartedAt: startedAt.UTC(),
		Elapsed:   elapsed,
		Calls:     calls,
		Pauses:    pauses,
	}
	if elapsed > 0 {
		run.AchievedHz = float64(calls) / elapsed.Seconds()
	}
	if rateHz > 0 {
		run.TargetHz = float64(rateHz)
		run.Ratio = run.AchievedHz / run.TargetHz
	}
	return run
}

// tally counts on the emitter's goroutine, which is also the sampler's, so
// plain integers suffice.
type tally struct {
	caller  noise.Caller
	sleeper noise.Sleeper
	calls   uint64
	pauses  uint64
}

func (t *tally) Call() {
	t.caller.Call()
	t.calls++
}

func (t *tally) Sleep(d time.Duration) {
	t.sleeper.Sleep(d)
	t.pauses++
}
