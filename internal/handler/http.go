package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/amaumene/syscallnoise/internal/domain"
	"github.com/amaumene/syscallnoise/internal/noise"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const contentTypeJSON = "application/json"

type EffectiveConfig struct {
	Enabled bool          `json:"enabled"`
	RateHz  int           `json:"rate_hz"`
	Mode    domain.Mode   `json:"mode"`
	Period  time.Duration `json:"period_ns"`
}

// NewEffectiveConfig describes an emitter running at rateHz.
func NewEffectiveConfig(enabled bool, rateHz int) EffectiveConfig {
	return EffectiveConfig{
		Enabled: enabled,
		RateHz:  rateHz,
		Mode:    noise.ModeFor(rateHz),
		Period:  noise.Period(rateHz),
	}
}

type HTTPHandler struct {
	cfg EffectiveConfig
}

func NewHTTPHandler(cfg EffectiveConfig) *HTTPHandler {
	return &HTTPHandler{cfg: cfg}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/config", h.handleConfig)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *HTTPHandler) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(h.cfg); err != nil {
		log.WithFields(log.Fields{
			"component": "handler",
			"error":     err,
		}).Error("failed to encode config")
	}
}
