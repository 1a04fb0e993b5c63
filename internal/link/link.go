// Package link creates and validates the symlinks that connect a repository's
// tree to the original location of each tracked source. No content is ever
// copied; the original file stays where it is and the repository references it.
package link

import (
	"fmt"
	"os"
	"path/filepath"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// Create places a symlink at dest pointing at source.
//
// The source must exist. A non-link file at dest is never overwritten
// (ErrDestinationExists). A link already pointing at the same source is a
// no-op success, so re-running sync is safe. A link pointing elsewhere is
// ErrLinkConflict.
func Create(source, dest string) error {
	if _, err := os.Lstat(source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", gberrors.ErrSourceNotFound, source)
		}
		return fmt.Errorf("failed to stat source %s: %w", source, err)
	}

	info, err := os.Lstat(dest)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink == 0:
		return fmt.Errorf("%w: %s", gberrors.ErrDestinationExists, dest)
	case err == nil:
		target, err := os.Readlink(dest)
		if err != nil {
			return fmt.Errorf("failed to read existing link %s: %w", dest, err)
		}
		if sameTarget(target, source, dest) {
			return nil
		}
		return &gberrors.LinkConflictError{LinkPath: dest, Target: target, Source: source}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat destination %s: %w", dest, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return fmt.Errorf("failed to create link directory: %w", err)
	}

	if err := os.Symlink(source, dest); err != nil {
		return fmt.Errorf("failed to create link %s -> %s: %w", dest, source, err)
	}
	return nil
}

// Verify reports whether linkPath is a symlink whose target is the given
// source and whose target still exists. Used by the read path only; a broken
// link is reported, never repaired.
func Verify(linkPath, source string) bool {
	info, err := os.Lstat(linkPath)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := os.Readlink(linkPath)
	if err != nil || !sameTarget(target, source, linkPath) {
		return false
	}

	_, err = os.Stat(linkPath)
	return err == nil
}

// sameTarget compares a readlink result against the expected source,
// resolving relative link targets against the link's directory.
func sameTarget(target, source, linkPath string) bool {
	if target == source {
		return true
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target) == filepath.Clean(source)
}
