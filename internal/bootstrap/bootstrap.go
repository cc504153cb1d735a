package bootstrap

import (
	"context"
	"runtime"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/logging"
	"github.com/amaumene/syscallnoise/internal/noise"
	log "github.com/sirupsen/logrus"
)

// launcher starts task without waiting for it.
type launcher func(task func())

// Initialize starts the background emitter unless NOISE_ENABLE is 0.
func Initialize() {
	start(context.Background(), detached)
}

func start(ctx context.Context, launch launcher, opts ...noise.Option) bool {
	if !config.Enabled() {
		return false
	}

	if err := logging.Setup(config.LoadLogSettings()); err != nil {
		logging.Discard()
	}

	launch(func() {
		runEmitter(ctx, opts...)
	})
	return true
}

// detached runs task on a goroutine pinned to its own OS thread. The thread
// is never released; it lives until the process exits.
func detached(task func()) {
	go func() {
		runtime.LockOSThread()
		task()
	}()
}

func runEmitter(ctx context.Context, opts ...noise.Option) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"component": "emitter",
				"panic":     r,
			}).Error("noise emitter stopped")
		}
	}()

	emitter := noise.NewEmitter(config.RateHz(), opts...)

	log.WithFields(log.Fields{
		"component": "emitter",
		"rateHz":    emitter.RateHz(),
		"mode":      emitter.Mode(),
		"period":    noise.Period(emitter.RateHz()),
	}).Info("noise emitter started")

	emitter.Run(ctx)
}
