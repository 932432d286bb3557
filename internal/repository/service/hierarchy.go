package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	model "github.com/partnerhub/iis-host/pkg/repository"
)

// ListPartnersAndTerminals lists every partner directory with its terminal directories.
// Both levels are sorted ascending by name. A missing root or partners directory yields
// an empty list.
func (s *RepositoryService) ListPartnersAndTerminals(ctx context.Context) ([]model.PartnerTerminals, error) {
	result := []model.PartnerTerminals{}

	root, ok := s.roots.Resolve()
	if !ok {
		log.Debug("Repository root not available, returning no partners")
		return result, nil
	}

	partnersPath := root.PartnersPath()
	partners, err := listDirNames(partnersPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDir(err) {
			return result, nil
		}
		return nil, fmt.Errorf("error reading partners directory: %w", err)
	}

	for _, partner := range partners {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		terminals, err := listDirNames(filepath.Join(partnersPath, partner))
		if err != nil {
			// Removed between the two reads
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading partner %s: %w", partner, err)
		}

		result = append(result, model.PartnerTerminals{
			Partner:   partner,
			Terminals: terminals,
		})
	}

	return result, nil
}
