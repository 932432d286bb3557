package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/iis-host/config"
	"github.com/partnerhub/iis-host/internal/repository/api"
	"github.com/partnerhub/iis-host/internal/repository/service"
	model "github.com/partnerhub/iis-host/pkg/repository"
)

// --- fake Service ---
type fakeService struct {
	partners    []model.PartnerTerminals
	listing     *service.ArchiveListing
	resolved    *service.ResolvedFile
	content     string
	err         error
	openErr     error
	closed      bool
	lastRequest []string
}

func (f *fakeService) ListPartnersAndTerminals(ctx context.Context) ([]model.PartnerTerminals, error) {
	return f.partners, f.err
}

func (f *fakeService) ListArchives(ctx context.Context, partnerID, terminalID string) (*service.ArchiveListing, error) {
	f.lastRequest = []string{partnerID, terminalID}
	return f.listing, f.err
}

func (f *fakeService) ResolveFile(ctx context.Context, partnerID, terminalID, requestedName string) (*service.ResolvedFile, error) {
	f.lastRequest = []string{partnerID, terminalID, requestedName}
	return f.resolved, f.err
}

func (f *fakeService) OpenArchive(ctx context.Context, file *service.ResolvedFile) (*service.ArchiveContent, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &service.ArchiveContent{
		Reader:   &trackingReader{Reader: strings.NewReader(f.content), closed: &f.closed},
		Name:     file.Name,
		MimeType: "application/zip",
		Size:     int64(len(f.content)),
		ModTime:  time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeService) StatArchive(ctx context.Context, partnerID, terminalID, requestedName string) (*model.ArchiveHeadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.ArchiveHeadResult{Name: f.resolved.Name, Size: int64(len(f.content)), Mime: "application/zip"}, nil
}

var _ service.Service = (*fakeService)(nil)

type trackingReader struct {
	io.Reader
	closed *bool
}

func (r *trackingReader) Close() error {
	*r.closed = true
	return nil
}

// ------------------------

func serve(t *testing.T, svc service.Service) *httptest.Server {
	t.Helper()
	ws := new(restful.WebService)
	ws.Path("/api/iis-host").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	api.RegisterRoutes(ws, api.NewRepositoryHandler(svc))

	container := restful.NewContainer()
	container.Add(ws)
	srv := httptest.NewServer(container)
	t.Cleanup(srv.Close)
	return srv
}

func TestListPartnersTerminals(t *testing.T) {
	srv := serve(t, &fakeService{partners: []model.PartnerTerminals{
		{Partner: "acme", Terminals: []string{"kiosk1", "kiosk2"}},
	}})

	resp, err := http.Get(srv.URL + "/api/iis-host/partners-terminals")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"partner":"acme","terminals":["kiosk1","kiosk2"]}]`, string(body))
}

func TestListPartnersTerminalsIOError(t *testing.T) {
	srv := serve(t, &fakeService{err: fmt.Errorf("error reading partners directory: %w", fs.ErrPermission)})

	resp, err := http.Get(srv.URL + "/api/iis-host/partners-terminals")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body model.RepositoryError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

func TestListArchivesShapes(t *testing.T) {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	entries := []model.ArchiveEntry{{SequenceID: 2, Name: "b.zip", CreatedAt: created}}

	fake := &fakeService{listing: &service.ArchiveListing{Mode: config.ListingByName, Entries: entries}}
	srv := serve(t, fake)

	resp, err := http.Get(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk1/zips")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `["b.zip"]`, string(body))
	assert.Equal(t, []string{"acme", "kiosk1"}, fake.lastRequest)

	fake.listing.Mode = config.ListingByCreated
	resp, err = http.Get(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk1/zips")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `[{"sequenceId":2,"name":"b.zip","createdAt":"2026-02-01T12:00:00Z"}]`, string(body))
}

func TestListArchivesNotFound(t *testing.T) {
	srv := serve(t, &fakeService{err: service.ErrNotFound})

	resp, err := http.Get(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk9/zips")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadArchive(t *testing.T) {
	fake := &fakeService{resolved: &service.ResolvedFile{Name: "Report 1.zip"}, content: "zip-bytes"}
	srv := serve(t, fake)

	resp, err := http.Get(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk1/zips/report%201.ZIP")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"acme", "kiosk1", "report 1.ZIP"}, fake.lastRequest)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Report 1.zip"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "Sat, 31 Jan 2026 08:00:00 GMT", resp.Header.Get("Last-Modified"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(body))
	assert.True(t, fake.closed, "archive reader must be closed")
}

func TestDownloadArchiveOpenFailure(t *testing.T) {
	fake := &fakeService{
		resolved: &service.ResolvedFile{Name: "a.zip"},
		openErr:  fmt.Errorf("error opening archive a.zip: %w", fs.ErrPermission),
	}
	srv := serve(t, fake)

	resp, err := http.Get(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk1/zips/a.zip")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHeadArchiveNotFound(t *testing.T) {
	srv := serve(t, &fakeService{err: service.ErrNotFound})

	resp, err := http.Head(srv.URL + "/api/iis-host/partners/acme/terminals/kiosk1/zips/a.zip")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
