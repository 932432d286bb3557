package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"

	"github.com/partnerhub/iis-host/config"
	apierrors "github.com/partnerhub/iis-host/internal/common/errors"
	"github.com/partnerhub/iis-host/internal/repository/service"
	"github.com/partnerhub/iis-host/pkg/logger"
	model "github.com/partnerhub/iis-host/pkg/repository"
)

var log = logger.New()

// RepositoryHandler serves the partner/terminal/archive endpoints
type RepositoryHandler struct {
	service service.Service
}

// NewRepositoryHandler creates a new RepositoryHandler
func NewRepositoryHandler(service service.Service) *RepositoryHandler {
	return &RepositoryHandler{
		service: service,
	}
}

// ListPartnersTerminals handles GET /partners-terminals
func (h *RepositoryHandler) ListPartnersTerminals(req *restful.Request, resp *restful.Response) {
	partners, err := h.service.ListPartnersAndTerminals(req.Request.Context())
	if err != nil {
		writeError(resp, err)
		return
	}
	resp.WriteHeaderAndJson(http.StatusOK, partners, restful.MIME_JSON)
}

// ListArchives handles GET /partners/{partnerId}/terminals/{terminalId}/zips
func (h *RepositoryHandler) ListArchives(req *restful.Request, resp *restful.Response) {
	listing, err := h.service.ListArchives(req.Request.Context(),
		req.PathParameter("partnerId"), req.PathParameter("terminalId"))
	if err != nil {
		writeError(resp, err)
		return
	}

	if listing.Mode == config.ListingByCreated {
		resp.WriteHeaderAndJson(http.StatusOK, listing.Entries, restful.MIME_JSON)
		return
	}
	resp.WriteHeaderAndJson(http.StatusOK, listing.Names(), restful.MIME_JSON)
}

// DownloadArchive handles GET /partners/{partnerId}/terminals/{terminalId}/zips/{zipName}
func (h *RepositoryHandler) DownloadArchive(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()

	file, err := h.service.ResolveFile(ctx,
		req.PathParameter("partnerId"), req.PathParameter("terminalId"), req.PathParameter("zipName"))
	if err != nil {
		writeError(resp, err)
		return
	}

	content, err := h.service.OpenArchive(ctx, file)
	if err != nil {
		writeError(resp, err)
		return
	}
	defer content.Reader.Close()

	resp.Header().Set("Content-Type", content.MimeType)
	resp.Header().Set("Content-Disposition", attachment(content.Name))
	resp.Header().Set("Content-Length", strconv.FormatInt(content.Size, 10))
	resp.Header().Set("Last-Modified", content.ModTime.UTC().Format(http.TimeFormat))
	resp.WriteHeader(http.StatusOK)

	// Headers are out; a failure here can only be logged
	if _, err := io.Copy(resp, content.Reader); err != nil {
		log.Warn("Streaming %s stopped: %v", content.Name, err)
	}
}

// HeadArchive handles HEAD /partners/{partnerId}/terminals/{terminalId}/zips/{zipName}
func (h *RepositoryHandler) HeadArchive(req *restful.Request, resp *restful.Response) {
	stat, err := h.service.StatArchive(req.Request.Context(),
		req.PathParameter("partnerId"), req.PathParameter("terminalId"), req.PathParameter("zipName"))
	if err != nil {
		resp.WriteHeader(apierrors.From(err).Code)
		return
	}

	statJSON, err := json.Marshal(stat)
	if err != nil {
		resp.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp.Header().Set("Content-Type", stat.Mime)
	resp.Header().Set("Content-Disposition", attachment(stat.Name))
	resp.Header().Set("Content-Length", strconv.FormatInt(stat.Size, 10))
	resp.Header().Set("X-Archive-Stat", string(statJSON))
	resp.WriteHeader(http.StatusOK)
}

// attachment builds a Content-Disposition value carrying the on-disk name
func attachment(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}

// writeError writes a structured error response. Not-found conditions are expected;
// anything else is logged as a server fault.
func writeError(resp *restful.Response, err error) {
	e := apierrors.From(err)
	message := e.Message
	if e.Code >= http.StatusInternalServerError {
		log.Error("Repository request failed: %v", err)
		message = apierrors.ErrInternalError.Message
	}
	resp.WriteHeaderAndJson(e.Code, model.RepositoryError{
		Code:    e.Reason,
		Message: message,
	}, restful.MIME_JSON)
}
