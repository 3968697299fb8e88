package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// apiContacts answers the full contact listing consumed by the map
// script.
func (h *Handler) apiContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing contacts")
		utils.WriteJSON(w, models.ContactsResponse{Success: false, Contacts: []models.Contact{}, Error: "could not load contacts"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ContactsResponse{
		Success:  true,
		Contacts: contacts,
		Count:    len(contacts),
	}, http.StatusOK)
}

// apiSearchContacts filters the listing by case-insensitive substring
// match. "q" matches either name; "firstName"/"lastName" target one
// field each. All present filters must match.
func (h *Handler) apiSearchContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing contacts for search")
		utils.WriteJSON(w, models.ContactsResponse{Success: false, Contacts: []models.Contact{}, Error: "could not load contacts"}, http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	q := strings.ToLower(strings.TrimSpace(query.Get("q")))
	firstName := strings.ToLower(strings.TrimSpace(query.Get("firstName")))
	lastName := strings.ToLower(strings.TrimSpace(query.Get("lastName")))

	matched := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		first := strings.ToLower(contact.FirstName)
		last := strings.ToLower(contact.LastName)

		if q != "" && !strings.Contains(first, q) && !strings.Contains(last, q) {
			continue
		}
		if firstName != "" && !strings.Contains(first, firstName) {
			continue
		}
		if lastName != "" && !strings.Contains(last, lastName) {
			continue
		}
		matched = append(matched, contact)
	}

	utils.WriteJSON(w, models.ContactsResponse{
		Success:  true,
		Contacts: matched,
		Count:    len(matched),
	}, http.StatusOK)
}

// apiGeocode proxies a single address lookup to the geocoding provider
// so the browser never talks to it directly.
func (h *Handler) apiGeocode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		utils.WriteJSON(w, models.GeocodeResponse{Success: false, Error: "address parameter is required"}, http.StatusBadRequest)
		return
	}

	results, err := h.services.ContactService.GeocodeAddress(r.Context(), address)
	if err != nil {
		log.Err(err).Str("address", address).Msg("geocode proxy request failed")
		utils.WriteJSON(w, models.GeocodeResponse{Success: false, Error: "geocoding provider unavailable"}, http.StatusBadGateway)
		return
	}
	if len(results) == 0 {
		utils.WriteJSON(w, models.GeocodeResponse{Success: false, Error: "no results found"}, http.StatusNotFound)
		return
	}

	best := results[0]
	utils.WriteJSON(w, models.GeocodeResponse{Success: true, Result: &best}, http.StatusOK)
}
