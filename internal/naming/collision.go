package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver guarantees that every resolved target path is distinct
// from all previously resolved targets and from every pre-existing path that
// is not itself a source in the batch. Duplicates get a numeric "-N" suffix
// before the extension, starting at 2. It is used sequentially within a
// single run; all methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // target path → source path that owns it
	counters map[string]int    // base target path → next suffix to try
}

// NewCollisionResolver seeds a resolver with the pre-existing paths, minus
// the batch's own source paths: pre-existing files outside the batch own
// their names and must never be clobbered, while a batch source either
// keeps its name (a no-op rename is not a conflict against itself) or
// vacates it for other entries.
func NewCollisionResolver(existing, sources []string) *CollisionResolver {
	owners := make(map[string]string, len(existing))
	for _, p := range existing {
		owners[p] = p
	}
	for _, p := range sources {
		delete(owners, p)
	}
	return &CollisionResolver{
		owners:   owners,
		counters: make(map[string]int),
	}
}

// Resolve returns the final target path for source's proposed name and
// claims it. If proposed is unclaimed (or already owned by source) it is
// returned unchanged; otherwise "-2", "-3", … variants are tried until a
// free name is found. Entries proposing the same name therefore resolve
// deterministically in call order.
func (cr *CollisionResolver) Resolve(source, proposed string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, taken := cr.owners[proposed]
	if !taken || owner == source {
		cr.owners[proposed] = source
		return proposed
	}

	dir := filepath.Dir(proposed)
	base := filepath.Base(proposed)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	counter := cr.counters[proposed]
	if counter < 2 {
		counter = 2
	}
	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
		if _, taken := cr.owners[candidate]; !taken {
			cr.counters[proposed] = counter + 1
			cr.owners[candidate] = source
			return candidate
		}
		counter++
	}
}
