package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/handler"
	"github.com/amaumene/syscallnoise/internal/metrics"
	"github.com/amaumene/syscallnoise/internal/noise"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type runOptions struct {
	rateHz      int64
	duration    time.Duration
	metricsAddr string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the emitter in the foreground",
		Long: `Runs the emitter on a dedicated OS thread until --for elapses, or forever.
Without --rate the rate comes from NOISE_RATE_HZ; 0 selects busy mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.rateHz, "rate", 1000, "Calls per second, clamped to [0, 1e9]; 0 is busy mode")
	cmd.Flags().DurationVar(&opts.duration, "for", 0, "Stop after this long; 0 runs until killed")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics, /health and /config on this address")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	if !config.Enabled() {
		log.WithField("component", "runner").Warn("emitter disabled by NOISE_ENABLE")
		return nil
	}

	rateHz := resolveRate(cmd, o.rateHz)
	metrics.Observe(rateHz)

	ctx := cmd.Context()
	if o.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.duration)
		defer cancel()
	}

	if o.metricsAddr != "" {
		srv := newMetricsServer(o.metricsAddr, handler.NewEffectiveConfig(true, rateHz))
		go startServer(srv)
		defer stopServer(srv)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	emitter := noise.NewEmitter(rateHz,
		noise.WithCaller(metrics.CountingCaller(noise.NewSyscallCaller())),
		noise.WithSleeper(metrics.CountingSleeper(noise.NewSyscallSleeper())),
	)

	log.WithFields(log.Fields{
		"component": "runner",
		"rateHz":    rateHz,
		"mode":      emitter.Mode(),
		"period":    noise.Period(rateHz),
	}).Info("noise emitter started")

	emitter.Run(ctx)

	log.WithField("component", "runner").Info("noise emitter stopped")
	return nil
}

// resolveRate prefers an explicit --rate over NOISE_RATE_HZ.
func resolveRate(cmd *cobra.Command, flagRate int64) int {
	if cmd.Flags().Changed("rate") {
		return config.Clamp(flagRate)
	}
	return config.RateHz()
}

func newMetricsServer(addr string, cfg handler.EffectiveConfig) *http.Server {
	mux := http.NewServeMux()
	handler.NewHTTPHandler(cfg).RegisterRoutes(mux)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func startServer(srv *http.Server) {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   srv.Addr,
	}).Info("http server listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server failed")
	}
}

func stopServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}
}
