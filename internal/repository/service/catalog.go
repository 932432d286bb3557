package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"

	"github.com/partnerhub/iis-host/config"
	model "github.com/partnerhub/iis-host/pkg/repository"
)

// ArchiveListing is the result of listing a terminal directory
type ArchiveListing struct {
	// Mode is config.ListingByName or config.ListingByCreated
	Mode    string
	Entries []model.ArchiveEntry
}

// Names returns the entry names in listing order
func (l *ArchiveListing) Names() []string {
	return lo.Map(l.Entries, func(entry model.ArchiveEntry, _ int) string {
		return entry.Name
	})
}

// ListArchives lists the archives directly inside a terminal directory.
//
// Sequence ids follow directory enumeration order and are assigned before sorting.
// By-name listings are then ordered by name ascending; by-created listings by creation
// time descending.
func (s *RepositoryService) ListArchives(ctx context.Context, partnerID, terminalID string) (*ArchiveListing, error) {
	dir, err := s.terminalDir(partnerID, terminalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.enumerateArchives(ctx, dir)
	if err != nil {
		return nil, err
	}

	switch s.listing {
	case config.ListingByCreated:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	}

	log.Debug("Listed %d archives for %s/%s", len(entries), dir.Partner, dir.Terminal)

	return &ArchiveListing{Mode: s.listing, Entries: entries}, nil
}

// enumerateArchives reads the directory unsorted so sequence ids reflect on-disk order
func (s *RepositoryService) enumerateArchives(ctx context.Context, dir TerminalDir) ([]model.ArchiveEntry, error) {
	f, err := os.Open(dir.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error opening terminal directory: %w", err)
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("error reading terminal directory: %w", err)
	}

	entries := []model.ArchiveEntry{}
	for _, entry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !hasExtension(entry.Name(), s.extension) {
			continue
		}
		info, ok := isRegularEntry(dir.Path(), entry)
		if !ok {
			continue
		}
		entries = append(entries, model.ArchiveEntry{
			SequenceID: len(entries) + 1,
			Name:       entry.Name(),
			CreatedAt:  createdTime(filepath.Join(dir.Path(), entry.Name()), info).UTC(),
		})
	}

	return entries, nil
}
