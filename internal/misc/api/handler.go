package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"

	"github.com/partnerhub/iis-host/internal/misc/service"
)

// MiscHandler handles miscellaneous operations
type MiscHandler struct {
	service *service.MiscService
}

// NewMiscHandler creates a new MiscHandler
func NewMiscHandler(service *service.MiscService) *MiscHandler {
	return &MiscHandler{
		service: service,
	}
}

// GetStatus handles GET /status request
func (h *MiscHandler) GetStatus(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndJson(http.StatusOK, h.service.GetStatus(), restful.MIME_JSON)
}

// GetVersion handles GET /version request
func (h *MiscHandler) GetVersion(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndJson(http.StatusOK, h.service.GetVersion(), restful.MIME_JSON)
}
