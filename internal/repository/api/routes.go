package api

import (
	"github.com/emicklei/go-restful/v3"

	model "github.com/partnerhub/iis-host/pkg/repository"
)

// RegisterRoutes registers the partner, terminal and archive routes
func RegisterRoutes(ws *restful.WebService, handler *RepositoryHandler) {
	partnerParam := ws.PathParameter("partnerId", "partner folder name (e.g. partner1)").DataType("string")
	terminalParam := ws.PathParameter("terminalId", "terminal folder name (e.g. terminal1)").DataType("string")
	zipParam := ws.PathParameter("zipName", "archive file name (e.g. report1.zip), matched case-insensitively as a fallback").DataType("string")

	ws.Route(ws.GET("/partners-terminals").To(handler.ListPartnersTerminals).
		Doc("list partners and their terminal folders").
		Returns(200, "OK", []model.PartnerTerminals{}).
		Returns(500, "Internal Server Error", model.RepositoryError{}))

	ws.Route(ws.GET("/partners/{partnerId}/terminals/{terminalId}/zips").To(handler.ListArchives).
		Doc("list archives of a terminal").
		Notes("Returns archive names ascending, or {sequenceId, name, createdAt} objects newest first "+
			"when the server runs with archive.listing=created.").
		Param(partnerParam).
		Param(terminalParam).
		Returns(200, "OK", []string{}).
		Returns(404, "Not Found", model.RepositoryError{}).
		Returns(500, "Internal Server Error", model.RepositoryError{}))

	ws.Route(ws.GET("/partners/{partnerId}/terminals/{terminalId}/zips/{zipName}").To(handler.DownloadArchive).
		Doc("download an archive").
		Produces(restful.MIME_OCTET, "application/zip", restful.MIME_JSON, "*/*").
		Param(partnerParam).
		Param(terminalParam).
		Param(zipParam).
		Returns(200, "OK", nil).
		Returns(404, "Not Found", model.RepositoryError{}).
		Returns(500, "Internal Server Error", model.RepositoryError{}))

	ws.Route(ws.HEAD("/partners/{partnerId}/terminals/{terminalId}/zips/{zipName}").To(handler.HeadArchive).
		Doc("get archive metadata").
		Produces(restful.MIME_OCTET, "application/zip", restful.MIME_JSON, "*/*").
		Param(partnerParam).
		Param(terminalParam).
		Param(zipParam).
		Returns(200, "OK", model.ArchiveHeadResult{}).
		Returns(404, "Not Found", nil).
		Returns(500, "Internal Server Error", nil))
}
