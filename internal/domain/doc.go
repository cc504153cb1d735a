// Package domain defines the shared types of syscallnoise: the emitter mode,
// the run summary produced by rate sampling and the repository contract used
// to persist summaries.
package domain
