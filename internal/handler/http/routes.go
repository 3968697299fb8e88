package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withSession)

	// open routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/contacts/{id}", h.viewContact)
		r.Get("/api/contacts", h.apiContacts)
		r.Get("/api/contacts/search", h.apiSearchContacts)
		r.Get("/api/geocode", h.apiGeocode)
		r.Get("/health", h.health)
	})

	// auth entry points: already-authenticated visitors go home
	router.Group(func(r chi.Router) {
		r.Use(h.redirectIfAuthenticated)
		r.Get("/auth/login", h.loginPage)
		r.Post("/auth/login", h.login)
		r.Get("/auth/signup", h.signupPage)
		r.Post("/auth/signup", h.signup)
	})

	router.Get("/auth/logout", h.logout)
	router.Post("/auth/logout", h.logout)

	// authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/auth/profile", h.profile)
		r.Get("/contacts/add", h.addContactPage)
		r.Post("/contacts", h.createContact)
		r.Get("/contacts/{id}/edit", h.editContactPage)
		r.Post("/contacts/{id}", h.updateContact)
		r.Delete("/contacts/{id}", h.deleteContact)
	})

	static, err := staticRoot()
	if err != nil {
		return nil, err
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	router.NotFound(h.notFound)

	return router, nil
}
