package format

import (
	"github.com/fatih/color"

	"github.com/partnerhub/iis-host/pkg/logger"
)

// APIEndpoint represents an API endpoint
type APIEndpoint struct {
	Method      string
	Path        string
	Description string
}

// FormatHTTPMethod returns a colored and bold HTTP method string
func FormatHTTPMethod(method string) string {
	switch method {
	case "GET":
		return color.New(color.Bold, color.FgGreen).Sprint(method)
	case "HEAD":
		return color.New(color.Bold, color.FgMagenta).Sprint(method)
	case "OPTIONS":
		return color.New(color.Bold, color.FgWhite).Sprint(method)
	default:
		return color.New(color.Bold).Sprint(method)
	}
}

// FormatRepositoryRoot describes the repository root and whether it is deployed
func FormatRepositoryRoot(path string, available bool) string {
	green := color.New(color.FgGreen)
	if available {
		return green.Sprint("Serving partners from ") + color.New(color.Bold, color.FgCyan).Sprint(path)
	}
	return color.New(color.FgYellow).Sprintf("Repository root %s not found; listings will be empty until it appears", path)
}

// LogAPIEndpoint logs an API endpoint with consistent formatting
func LogAPIEndpoint(logger *logger.Logger, endpoint APIEndpoint) {
	// Tabs keep alignment since ANSI color codes don't affect tab stops
	logger.Info("  %s\t\t%s\t\t%s",
		FormatHTTPMethod(endpoint.Method),
		endpoint.Path,
		endpoint.Description,
	)
}

// LogAPIEndpoints logs a header and a list of API endpoints
func LogAPIEndpoints(logger *logger.Logger, endpoints []APIEndpoint) {
	logger.Info("API endpoints:")
	for _, endpoint := range endpoints {
		LogAPIEndpoint(logger, endpoint)
	}
}
