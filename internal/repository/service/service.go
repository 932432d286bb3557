package service

import (
	"context"
	"fmt"

	"github.com/partnerhub/iis-host/config"
	apierrors "github.com/partnerhub/iis-host/internal/common/errors"
	model "github.com/partnerhub/iis-host/pkg/repository"
)

// ErrNotFound covers every missing level of the hierarchy as well as blank identifiers
var ErrNotFound = apierrors.ErrNotFound

// Service is the read-only view of the partner archive repository
type Service interface {
	ListPartnersAndTerminals(ctx context.Context) ([]model.PartnerTerminals, error)
	ListArchives(ctx context.Context, partnerID, terminalID string) (*ArchiveListing, error)
	ResolveFile(ctx context.Context, partnerID, terminalID, requestedName string) (*ResolvedFile, error)
	OpenArchive(ctx context.Context, file *ResolvedFile) (*ArchiveContent, error)
	StatArchive(ctx context.Context, partnerID, terminalID, requestedName string) (*model.ArchiveHeadResult, error)
}

// RepositoryService walks <root>/partners/<partner>/<terminal> on every call
type RepositoryService struct {
	roots     RootResolver
	extension string
	mimeType  string
	listing   string
}

var _ Service = (*RepositoryService)(nil)

// New creates a RepositoryService from the process configuration
func New(cfg *config.Config) (*RepositoryService, error) {
	rootPath, err := cfg.Repository.RootPath()
	if err != nil {
		return nil, err
	}

	switch cfg.Archive.Listing {
	case config.ListingByName, config.ListingByCreated:
	default:
		return nil, fmt.Errorf("unsupported archive listing mode: %s", cfg.Archive.Listing)
	}

	log.Info("Repository service initialized with root: %s (archives: *%s, listing by %s)",
		rootPath, cfg.Archive.Extension, cfg.Archive.Listing)

	return &RepositoryService{
		roots:     NewRootResolver(rootPath),
		extension: cfg.Archive.Extension,
		mimeType:  cfg.Archive.Mime,
		listing:   cfg.Archive.Listing,
	}, nil
}

// Roots returns the resolver the service reads its root from
func (s *RepositoryService) Roots() RootResolver {
	return s.roots
}

// ListingMode returns the configured archive listing mode
func (s *RepositoryService) ListingMode() string {
	return s.listing
}
