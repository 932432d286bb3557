package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResolvedFile is a regular file found directly inside a terminal directory
type ResolvedFile struct {
	// Name is the on-disk name, which may differ in case from the request
	Name    string
	Size    int64
	ModTime time.Time
	path    string
}

// Path returns the absolute path of the file
func (f *ResolvedFile) Path() string {
	return f.path
}

// ResolveFile maps a client-supplied name to a file in <root>/partners/<partner>/<terminal>.
//
// Only the final segment of requestedName is used, so "../" or absolute paths can never
// leave the terminal directory. An exact match wins; otherwise the directory is scanned
// once for a case-insensitive match.
func (s *RepositoryService) ResolveFile(ctx context.Context, partnerID, terminalID, requestedName string) (*ResolvedFile, error) {
	if isBlank(partnerID) || isBlank(terminalID) || isBlank(requestedName) {
		return nil, ErrNotFound
	}

	name := baseName(requestedName)
	if !isSegment(name) {
		return nil, ErrNotFound
	}

	dir, err := s.terminalDir(partnerID, terminalID)
	if err != nil {
		return nil, err
	}

	candidate := filepath.Join(dir.Path(), name)
	info, err := os.Stat(candidate)
	switch {
	case err == nil && info.Mode().IsRegular():
		return &ResolvedFile{Name: name, Size: info.Size(), ModTime: info.ModTime(), path: candidate}, nil
	case err != nil && errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("error checking file %s: %w", name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.findFold(dir, name)
}

// findFold scans the terminal directory, in name order, for a case-insensitive match
func (s *RepositoryService) findFold(dir TerminalDir, name string) (*ResolvedFile, error) {
	entries, err := os.ReadDir(dir.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error reading terminal directory: %w", err)
	}

	for _, entry := range entries {
		if !strings.EqualFold(entry.Name(), name) {
			continue
		}
		info, ok := isRegularEntry(dir.Path(), entry)
		if !ok {
			continue
		}
		log.Debug("Resolved %q to %q in %s/%s", name, entry.Name(), dir.Partner, dir.Terminal)
		return &ResolvedFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			path:    filepath.Join(dir.Path(), entry.Name()),
		}, nil
	}

	return nil, ErrNotFound
}
