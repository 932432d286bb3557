package server

import (
	"fmt"
	"strings"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"

	miscApi "github.com/partnerhub/iis-host/internal/misc/api"
	repositoryApi "github.com/partnerhub/iis-host/internal/repository/api"
	"github.com/partnerhub/iis-host/pkg/format"
	"github.com/partnerhub/iis-host/pkg/logger"
)

// RootPath is the path every route is mounted under
const RootPath = "/api/iis-host"

// RequestIDHeader carries the request correlation ID
const RequestIDHeader = "X-Request-ID"

// NewContainer builds the REST container with all routes and filters registered
func NewContainer(log *logger.Logger, repositoryHandler *repositoryApi.RepositoryHandler, miscHandler *miscApi.MiscHandler) (*restful.Container, []format.APIEndpoint) {
	container := restful.NewContainer()

	ws := new(restful.WebService)
	ws.Path(RootPath).
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON, "*/*")

	// Register routes
	miscApi.RegisterRoutes(ws, miscHandler)
	repositoryApi.RegisterRoutes(ws, repositoryHandler)

	container.Add(ws)

	endpoints := make([]format.APIEndpoint, 0, len(ws.Routes()))
	for _, route := range ws.Routes() {
		endpoints = append(endpoints, format.APIEndpoint{
			Method:      route.Method,
			Path:        route.Path,
			Description: route.Doc,
		})
	}

	container.Filter(requestIDFilter)

	cors := restful.CrossOriginResourceSharing{
		AllowedHeaders: []string{"Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:  []string{"Content-Disposition", RequestIDHeader},
		AllowedMethods: []string{"GET", "HEAD"},
		AllowedDomains: []string{"*"},
		Container:      container,
	}
	container.Filter(cors.Filter)
	container.Filter(container.OPTIONSFilter)

	container.Filter(loggingFilter(log))

	return container, endpoints
}

// requestIDFilter echoes the caller's request ID or assigns a new one
func requestIDFilter(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	id := strings.TrimSpace(req.Request.Header.Get(RequestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	req.SetAttribute(RequestIDHeader, id)
	resp.Header().Set(RequestIDHeader, id)
	chain.ProcessFilter(req, resp)
}

func loggingFilter(log *logger.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		url := req.Request.URL.Path
		if req.Request.URL.RawQuery != "" {
			url += "?" + req.Request.URL.RawQuery
		}
		entry := log.Request(fmt.Sprint(req.Attribute(RequestIDHeader)))
		entry.Infof("%s %s %s", req.Request.Method, url, req.Request.Proto)

		if log.IsDebugEnabled() && len(req.Request.Header) > 0 {
			headers := make([]string, 0, len(req.Request.Header))
			for name, values := range req.Request.Header {
				headers = append(headers, fmt.Sprintf("%s: %s", name, values[0]))
			}
			entry.Debugf("Headers: %s", strings.Join(headers, ", "))
		}

		chain.ProcessFilter(req, resp)

		entry.Debugf("Route %s %v -> %d", req.SelectedRoutePath(), req.PathParameters(), resp.StatusCode())
	}
}
