package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectFiles gathers the candidate file paths for a run in deterministic
// order. root may be a single file or a directory; exts, when non-nil, is
// the canonicalized allow-list (lowercase, leading dot) and files outside
// it are excluded before planning.
func CollectFiles(root string, recursive bool, exts map[string]struct{}) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	var files []string
	switch {
	case !info.IsDir():
		files = []string{root}
	case recursive:
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && d.Name() != lockFileName {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	default:
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && e.Name() != lockFileName {
				files = append(files, filepath.Join(root, e.Name()))
			}
		}
	}

	if exts != nil {
		kept := files[:0]
		for _, f := range files {
			if _, ok := exts[strings.ToLower(filepath.Ext(f))]; ok {
				kept = append(kept, f)
			}
		}
		files = kept
	}

	sort.Strings(files)
	return files, nil
}

// CollectDirs gathers directories under root (root itself excluded), sorted
// deepest first so renaming a parent never invalidates a child path that is
// still waiting in the plan.
func CollectDirs(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var dirs []string
	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != root {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}

	sort.Strings(dirs)
	sort.SliceStable(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(filepath.Separator)) >
			strings.Count(dirs[j], string(filepath.Separator))
	})
	return dirs, nil
}

// ExistingPaths lists every entry in each distinct parent directory of the
// given paths. This is the collision baseline: targets must not clobber any
// of these unless the path is itself a batch source.
func ExistingPaths(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var existing []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if _, done := seen[dir]; done {
			continue
		}
		seen[dir] = struct{}{}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			existing = append(existing, filepath.Join(dir, e.Name()))
		}
	}
	return existing, nil
}
