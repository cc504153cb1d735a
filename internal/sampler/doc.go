// Package sampler measures the call rate an emitter actually achieves.
//
// A sample runs the emitter on the calling goroutine for a fixed window,
// counts calls and pauses, and produces a domain.RunSummary that can be
// recorded for later comparison between busy, paced and disabled runs.
package sampler
