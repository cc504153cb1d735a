// Package metrics exports emitter activity as Prometheus collectors. Only the
// foreground runner uses it; the injected library never registers a listener.
package metrics

import (
	"time"

	"github.com/amaumene/syscallnoise/internal/noise"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Calls = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "noise_calls_total",
		Help: "Lightweight system calls issued by the emitter.",
	})
	Pauses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "noise_pauses_total",
		Help: "Timed suspensions between calls.",
	})
	RateHz = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "noise_rate_hz",
		Help: "Configured emitter rate; 0 means busy mode.",
	})
	BusyMode = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "noise_busy_mode",
		Help: "1 while the emitter runs without pauses.",
	})
)

func init() {
	prometheus.MustRegister(Calls, Pauses, RateHz, BusyMode)
}

// Observe publishes the configured rate.
func Observe(rateHz int) {
	RateHz.Set(float64(rateHz))
	if rateHz == 0 {
		BusyMode.Set(1)
	} else {
		BusyMode.Set(0)
	}
}

type countingCaller struct {
	inner noise.Caller
}

// CountingCaller counts every call made through inner.
func CountingCaller(inner noise.Caller) noise.Caller {
	return countingCaller{inner: inner}
}

func (c countingCaller) Call() {
	c.inner.Call()
	Calls.Inc()
}

type countingSleeper struct {
	inner noise.Sleeper
}

// CountingSleeper counts every pause made through inner.
func CountingSleeper(inner noise.Sleeper) noise.Sleeper {
	return countingSleeper{inner: inner}
}

func (s countingSleeper) Sleep(d time.Duration) {
	s.inner.Sleep(d)
	Pauses.Inc()
}
