// Command libnoise builds the injectable noise library:
//
//	go build -buildmode=c-shared -o libnoise.so ./cmd/libnoise
//	LD_PRELOAD=./libnoise.so NOISE_RATE_HZ=500 some-program
//
// The Go runtime runs package initializers when the shared object is loaded,
// before the host's main, which is where the emitter is started.
package main

import "C"

import "github.com/amaumene/syscallnoise/internal/bootstrap"

func init() {
	bootstrap.Initialize()
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
