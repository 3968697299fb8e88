package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session_id"

// withSession resolves the session cookie into an identity for the
// request. A valid live session is stored in the context under
// [utils.SessionCtxKey]; a missing, expired, or unknown token leaves the
// request anonymous and clears the stale cookie. The middleware never
// rejects a request: access control is requireAuth's job.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.services.SessionService.Get(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrSessionExpired) {
				clearSessionCookie(w)
			} else {
				log.Err(err).Msg("error resolving session")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth redirects anonymous visitors to the login page, preserving
// the originally requested URL in the return_to parameter so the login
// flow can resume it.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			target := "/auth/login?error=auth_required&return_to=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// redirectIfAuthenticated sends already-authenticated visitors home
// instead of showing the login/signup forms again.
func (h *Handler) redirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeReturnTo validates a return_to value: only local absolute paths
// are accepted, anything else falls back to "/". Protocol-relative
// ("//host") and scheme-carrying values are rejected to prevent open
// redirects.
func safeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	if strings.ContainsAny(raw, "\\") {
		return "/"
	}
	return raw
}
