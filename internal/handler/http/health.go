package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// health reports process liveness. The payload carries the server time,
// the uptime since handler construction and the build version.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Version:       h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
