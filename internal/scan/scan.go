package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// ErrInvalidInput indicates the root path cannot be scanned at all. It is
// fatal and reported before any processing starts.
var ErrInvalidInput = errors.New("invalid input")

// Options controls a discovery pass.
type Options struct {
	// Extension selects files, including the leading dot (".mkv").
	Extension string
	// MaxAge excludes directory entries modified longer ago than this.
	// Zero disables the filter. Never applied to an explicitly named file.
	MaxAge time.Duration
	// Now anchors the MaxAge window; zero value means time.Now().
	Now time.Time
}

// Discover resolves the root to a list of absolute candidate paths. An empty
// result is not an error. A root that is neither a matching file nor a
// readable directory yields ErrInvalidInput.
func Discover(root string, opts Options) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, absRoot, err)
	}

	ext := strings.ToLower(opts.Extension)

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(absRoot), ext) {
			return nil, fmt.Errorf("%w: %s is not a %s file", ErrInvalidInput, absRoot, ext)
		}
		// An explicitly named file is always processed; recency is a
		// directory-scan concern only.
		return []string{absRoot}, nil
	}

	if err := unix.Access(absRoot, unix.R_OK|unix.X_OK); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory %s: %v", ErrInvalidInput, absRoot, err)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := time.Time{}
	if opts.MaxAge > 0 {
		cutoff = now.Add(-opts.MaxAge)
	}

	var found []string
	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal; the root itself
			// was already verified readable.
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			return nil
		}
		if !cutoff.IsZero() {
			fileInfo, infoErr := entry.Info()
			if infoErr != nil {
				return nil
			}
			if fileInfo.ModTime().Before(cutoff) {
				return nil
			}
		}
		found = append(found, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", absRoot, walkErr)
	}
	return found, nil
}
