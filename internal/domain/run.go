package domain

import (
	"context"
	"time"
)

type Mode string

const (
	// ModeBusy issues calls back to back without pausing.
	ModeBusy Mode = "busy"
	// ModePaced pauses a fixed period after every call.
	ModePaced Mode = "paced"
)

// RunSummary is the outcome of sampling an emitter for a bounded window.
type RunSummary struct {
	ID         string        `json:"id"`
	Label      string        `json:"label" boltholdIndex:"Label"`
	Enabled    bool          `json:"enabled"`
	RateHz     int           `json:"rate_hz"`
	Mode       Mode          `json:"mode"`
	Period     time.Duration `json:"period_ns"`
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Calls      uint64        `json:"calls"`
	Pauses     uint64        `json:"pauses"`
	AchievedHz float64       `json:"achieved_hz"`
	TargetHz   float64       `json:"target_hz"`
	Ratio      float64       `json:"ratio"`
}

type RunRepository interface {
	Insert(ctx context.Context, run *RunSummary) error
	Get(ctx context.Context, id string) (*RunSummary, error)
	List(ctx context.Context) ([]RunSummary, error)
	FindByLabel(ctx context.Context, label string) ([]RunSummary, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
