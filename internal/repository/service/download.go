package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	model "github.com/partnerhub/iis-host/pkg/repository"
)

// ArchiveContent is an open archive ready to be streamed
type ArchiveContent struct {
	Reader   io.ReadCloser
	Name     string
	MimeType string
	Size     int64
	ModTime  time.Time
}

// OpenArchive opens a resolved file for streaming. Reads fail once ctx is done;
// the caller must Close the reader.
func (s *RepositoryService) OpenArchive(ctx context.Context, file *ResolvedFile) (*ArchiveContent, error) {
	if file == nil || file.path == "" {
		return nil, ErrNotFound
	}

	f, err := os.Open(file.path)
	if err != nil {
		// Removed after it was resolved
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error opening archive %s: %w", file.Name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error getting archive info %s: %w", file.Name, err)
	}

	return &ArchiveContent{
		Reader:   &contextReader{ctx: ctx, file: f},
		Name:     file.Name,
		MimeType: s.mimeType,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}, nil
}

// StatArchive resolves an archive and returns its metadata without opening it
func (s *RepositoryService) StatArchive(ctx context.Context, partnerID, terminalID, requestedName string) (*model.ArchiveHeadResult, error) {
	file, err := s.ResolveFile(ctx, partnerID, terminalID, requestedName)
	if err != nil {
		return nil, err
	}

	return &model.ArchiveHeadResult{
		Name:    file.Name,
		Size:    file.Size,
		ModTime: file.ModTime.UTC().Format(time.RFC3339),
		Mime:    s.mimeType,
	}, nil
}

// contextReader stops reading once the request is cancelled
type contextReader struct {
	ctx  context.Context
	file *os.File
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.file.Read(p)
}

func (r *contextReader) Close() error {
	return r.file.Close()
}
