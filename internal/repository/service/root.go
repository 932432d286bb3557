package service

import (
	"os"
	"path/filepath"
)

// PartnersDir is the subdirectory of the root holding one directory per partner
const PartnersDir = "partners"

// Root is an existing repository root directory
type Root struct {
	path string
}

// Path returns the absolute root path
func (r Root) Path() string {
	return r.path
}

// PartnersPath returns <root>/partners
func (r Root) PartnersPath() string {
	return filepath.Join(r.path, PartnersDir)
}

// RootResolver reports the repository root, or false when it is not deployed
type RootResolver interface {
	Resolve() (Root, bool)
}

// DirRootResolver resolves a fixed directory, checking it exists on every call
type DirRootResolver struct {
	path string
}

// NewRootResolver creates a resolver for the given directory
func NewRootResolver(path string) *DirRootResolver {
	return &DirRootResolver{path: path}
}

// Path returns the configured path, whether or not it exists
func (r *DirRootResolver) Path() string {
	return r.path
}

// Resolve returns the root if the directory exists. Any stat failure counts as absent.
func (r *DirRootResolver) Resolve() (Root, bool) {
	if r.path == "" {
		return Root{}, false
	}
	info, err := os.Stat(r.path)
	if err != nil || !info.IsDir() {
		return Root{}, false
	}
	return Root{path: r.path}, true
}
