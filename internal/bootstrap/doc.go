// Package bootstrap holds the load-time entry point of the injected library.
//
// Initialize is called exactly once when the shared object is mapped into a
// host process. It never reports failure to the host: a disabled flag, bad
// log settings or a panicking emitter all end silently.
package bootstrap
