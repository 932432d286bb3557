package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/samber/lo"

	"github.com/partnerhub/iis-host/pkg/logger"
)

var log = logger.New()

// TerminalDir is a verified <root>/partners/<partner>/<terminal> directory
type TerminalDir struct {
	Partner  string
	Terminal string
	path     string
}

// Path returns the absolute terminal directory path
func (d TerminalDir) Path() string {
	return d.path
}

// terminalDir walks root → partner → terminal, returning ErrNotFound at the first missing level
func (s *RepositoryService) terminalDir(partnerID, terminalID string) (TerminalDir, error) {
	if !isSegment(partnerID) || !isSegment(terminalID) {
		return TerminalDir{}, ErrNotFound
	}

	root, ok := s.roots.Resolve()
	if !ok {
		return TerminalDir{}, ErrNotFound
	}

	partnerPath := filepath.Join(root.PartnersPath(), partnerID)
	if ok, err := dirExists(partnerPath); err != nil || !ok {
		return TerminalDir{}, notFoundOr(err)
	}

	terminalPath := filepath.Join(partnerPath, terminalID)
	if ok, err := dirExists(terminalPath); err != nil || !ok {
		return TerminalDir{}, notFoundOr(err)
	}

	return TerminalDir{Partner: partnerID, Terminal: terminalID, path: terminalPath}, nil
}

func notFoundOr(err error) error {
	if err != nil {
		return err
	}
	return ErrNotFound
}

// dirExists reports whether path is a directory. Missing paths are not an error;
// permission and other I/O faults are.
func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDir(err) {
			return false, nil
		}
		return false, fmt.Errorf("error checking directory %s: %w", path, err)
	}
	return info.IsDir(), nil
}

func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

// listDirNames returns the names of the directories directly inside path, ascending
func listDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	dirs := lo.Filter(entries, func(entry fs.DirEntry, _ int) bool {
		return isDirEntry(path, entry)
	})
	return lo.Map(dirs, func(entry fs.DirEntry, _ int) string {
		return entry.Name()
	}), nil
}

// isDirEntry follows symlinks so linked partner/terminal directories are listed
func isDirEntry(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// isRegularEntry follows symlinks so linked archives are served
func isRegularEntry(parent string, entry fs.DirEntry) (fs.FileInfo, bool) {
	if entry.IsDir() {
		return nil, false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, true
}

// isBlank matches empty and whitespace-only identifiers
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isSegment reports whether name can be used as exactly one path segment
func isSegment(name string) bool {
	if isBlank(name) || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

// baseName keeps only the final segment of a client-supplied name. Both separators
// are stripped on every platform.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// hasExtension matches the archive extension case-insensitively
func hasExtension(name, ext string) bool {
	return len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
}
