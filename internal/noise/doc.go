// Package noise implements the emitter loop that generates system call noise.
//
// An Emitter repeatedly invokes a lightweight system call. With a rate of
// zero it runs back to back (busy mode); with a positive rate it pauses a
// fixed period after each call. Return values are never inspected and an
// interrupted pause is not resumed, so the loop has no error paths.
package noise
