package storage

import (
	"fmt"
	"os"

	"github.com/timshannon/bolthold"
)

const defaultFilePermissions os.FileMode = 0600

// Open opens or creates the BoltHold store at path.
func Open(path string) (*bolthold.Store, error) {
	store, err := bolthold.Open(path, defaultFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}
