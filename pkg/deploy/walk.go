package deploy

import (
	"io/fs"
	"path/filepath"

	"github.com/longplay45/swissgrid/pkg/errors"
)

// Entry is one item of a local deploy plan, with its slash-separated path
// relative to the tree root.
type Entry struct {
	Rel   string
	Abs   string
	IsDir bool
}

// WalkLocal collects the upload plan for a local tree: directories first in
// creation order, then files, with excluded paths pruned. Excluded
// directories are not descended into.
func WalkLocal(root string, excludes []string) ([]Entry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "resolving local root failed")
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if Excluded(rel, excludes) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		entries = append(entries, Entry{Rel: rel, Abs: p, IsDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "walking local tree %s failed", root)
	}
	return entries, nil
}
