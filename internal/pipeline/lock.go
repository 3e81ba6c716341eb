package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockFileName is created in the run's root directory while renames are in
// flight, so two concurrent runs cannot interleave their plans.
const lockFileName = ".filenorm.lock"

// acquireRunLock takes a non-blocking exclusive lock under dir and returns a
// release func. Dry runs never call this; only real runs mutate the tree.
func acquireRunLock(dir string) (func(), error) {
	path := filepath.Join(dir, lockFileName)
	fl := flock.New(path)

	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("another run is already in progress in %s", dir)
	}

	// The lock file is left in place after release: unlinking it would race
	// with a concurrent run that just locked the same path. Discovery skips
	// it, so it never becomes a rename candidate.
	release := func() {
		_ = fl.Unlock()
	}
	return release, nil
}
