// Package storage provides a BoltDB-backed RunRepository.
//
// Run summaries are kept with BoltHold keyed by their ID and indexed by
// label. All operations honour context cancellation and map BoltHold's
// sentinel errors to the domain ones.
package storage
