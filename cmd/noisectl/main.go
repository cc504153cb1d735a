// Command noisectl runs and measures the syscall noise emitter outside of an
// injected host process.
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("noisectl failed")
		os.Exit(1)
	}
}
