package transfer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExcludeDirs are skipped during folder scans regardless of config.
var DefaultExcludeDirs = []string{
	".git", "node_modules", ".cache", "__pycache__", "target",
}

// FileEntry is one sendable file found by Scan.
type FileEntry struct {
	Path    string // absolute path
	RelPath string // relative to the scan root
	Size    int64
}

// ScanOptions controls folder scanning.
type ScanOptions struct {
	MaxDepth    int      // 0 = unlimited
	ExcludeDirs []string // additional directory names or absolute paths to skip
}

// Scan walks root and collects regular files to offer for sending.
// Hidden files (dotfiles) are skipped; symlinks are not followed.
func Scan(root string, opts ScanOptions) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	excluded := func(path, name string) bool {
		for _, d := range DefaultExcludeDirs {
			if name == d {
				return true
			}
		}
		for _, d := range opts.ExcludeDirs {
			if name == d || path == d {
				return true
			}
		}
		return false
	}

	var entries []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it rather than abort the scan
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if excluded(path, d.Name()) || strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if opts.MaxDepth > 0 && strings.Count(rel, string(filepath.Separator))+1 >= opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		entries = append(entries, FileEntry{
			Path:    path,
			RelPath: rel,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// IsSendable reports whether path is an existing regular file.
func IsSendable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
