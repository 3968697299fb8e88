// Package http implements the HTTP transport layer of the application:
// server-rendered pages, JSON endpoints, and the middleware chain
// (tracing, logging, compression, session resolution) applied before
// requests reach the service layer.
package http

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/service"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Handler struct {
	services  *service.Services
	templates *template.Template

	// startTime is recorded at construction and reported as uptime by
	// the health endpoint.
	startTime time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		logger.Err(err).Msg("error parsing templates")
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		templates: templates,
		startTime: time.Now(),
		logger:    logger,
	}, nil
}

// staticRoot returns the embedded static asset tree rooted below the
// "static" directory, for serving under /static/.
func staticRoot() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
