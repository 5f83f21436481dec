package diagfmt

import (
	"path/filepath"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto uses a path relative to the working directory when it
	// does not climb out of it, absolute otherwise.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// BaseDir is the directory relative paths are computed against; the
	// working directory when empty.
	BaseDir string
}

// TokenOpts configures the pretty token listing.
type TokenOpts struct {
	Color bool
	// Width обрезает текст токена до стольких колонок, 0 - без ограничения
	Width int
}

func displayPath(path string, mode PathMode, base string) string {
	if path == "" {
		return "<buffer>"
	}
	if base == "" {
		base = "."
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		absBase, err1 := filepath.Abs(base)
		absPath, err2 := filepath.Abs(path)
		if err1 != nil || err2 != nil {
			return path
		}
		rel, err := filepath.Rel(absBase, absPath)
		if err != nil {
			return path
		}
		if mode == PathModeAuto && (rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)) {
			return absPath
		}
		return rel
	}
	return path
}
