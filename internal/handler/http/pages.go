package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// flash carries the one-shot messages passed between pages as query
// parameters, rendered by the layout header on the next view.
type flash struct {
	Success string
	Error   string
	Info    string
}

// basePage is the data every template receives: the page title, the
// authenticated identity (nil when anonymous), and flash messages.
type basePage struct {
	Title   string
	Session *models.Session
	Flash   flash
}

type indexPage struct {
	basePage
	Contacts []models.Contact
}

type authPage struct {
	basePage
	ReturnTo string
}

type contactPage struct {
	basePage
	Contact models.Contact
}

type errorPage struct {
	basePage
	Status  int
	Message string
}

// errorCodeMessages maps the short error codes passed via the "error"
// query parameter to the user-facing messages shown on forms.
var errorCodeMessages = map[string]string{
	"auth_required":       "Please log in to continue.",
	"invalid_credentials": "Invalid username or password.",
	"user_not_found":      "No account found with that username.",
	"username_taken":      "That username is already taken.",
	"password_mismatch":   "Passwords do not match.",
	"invalid_input":       "Please fill in all required fields.",
	"username_too_short":  "Username must be at least 3 characters.",
	"password_too_short":  "Password must be at least 6 characters.",
	"server_error":        "Something went wrong. Please try again.",
}

// newBasePage assembles the common template data for the request:
// identity from the session middleware and flash messages from the
// query string. Known error codes are translated; unknown values pass
// through as-is.
func (h *Handler) newBasePage(r *http.Request, title string) basePage {
	page := basePage{Title: title}

	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		page.Session = &session
	}

	query := r.URL.Query()
	page.Flash.Success = query.Get("success")
	page.Flash.Info = query.Get("info")
	if code := query.Get("error"); code != "" {
		if message, ok := errorCodeMessages[code]; ok {
			page.Flash.Error = message
		} else {
			page.Flash.Error = code
		}
	}

	return page
}

// render executes the named template, falling back to a plain 500 when
// execution fails mid-write.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("error rendering template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError renders the shared error page with the given status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	data := errorPage{
		basePage: h.newBasePage(r, "Error"),
		Status:   status,
		Message:  message,
	}
	if err := h.templates.ExecuteTemplate(w, "error", data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering error page")
	}
}

// home renders the contact list and map.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing contacts for home page")
		h.renderError(w, r, http.StatusInternalServerError, "Could not load contacts.")
		return
	}

	h.render(w, r, "index", indexPage{
		basePage: h.newBasePage(r, "Contact Manager"),
		Contacts: contacts,
	})
}

// notFound renders the error page for unknown routes.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}
