package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/service"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/validators"
	"github.com/MKhiriev/go-contact-manager/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", authPage{
		basePage: h.newBasePage(r, "Log In"),
		ReturnTo: safeReturnTo(r.URL.Query().Get("return_to")),
	})
}

// login handles the login form submit. Errors travel back to the form as
// short codes in the query string; success establishes a session and
// resumes the preserved destination.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing login form")
		http.Redirect(w, r, "/auth/login?error=invalid_input", http.StatusSeeOther)
		return
	}

	returnTo := safeReturnTo(r.PostFormValue("return_to"))
	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		code := "server_error"
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			code = "invalid_input"
		case errors.Is(err, store.ErrUserNotFound):
			code = "user_not_found"
		case errors.Is(err, service.ErrWrongPassword):
			code = "invalid_credentials"
		default:
			log.Err(err).Msg("unexpected error occurred during login")
		}
		http.Redirect(w, r, loginRedirect(code, returnTo), http.StatusSeeOther)
		return
	}

	session, err := h.services.SessionService.Create(ctx, user)
	if err != nil {
		log.Err(err).Msg("error creating session after login")
		http.Redirect(w, r, loginRedirect("server_error", returnTo), http.StatusSeeOther)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully logged in")
	setSessionCookie(w, session)
	http.Redirect(w, r, withFlash(returnTo, "success", "Welcome back, "+user.Username+"!"), http.StatusSeeOther)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup", authPage{
		basePage: h.newBasePage(r, "Sign Up"),
		ReturnTo: safeReturnTo(r.URL.Query().Get("return_to")),
	})
}

// signup handles the registration form submit and logs the new user in
// on success.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing signup form")
		http.Redirect(w, r, "/auth/signup?error=invalid_input", http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")

	if username == "" || password == "" || confirm == "" {
		http.Redirect(w, r, "/auth/signup?error=invalid_input", http.StatusSeeOther)
		return
	}
	if password != confirm {
		http.Redirect(w, r, "/auth/signup?error=password_mismatch", http.StatusSeeOther)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, models.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		code := "server_error"
		switch {
		case errors.Is(err, validators.ErrUsernameTooShort):
			code = "username_too_short"
		case errors.Is(err, validators.ErrPasswordTooShort):
			code = "password_too_short"
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			code = "username_taken"
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
		}
		http.Redirect(w, r, "/auth/signup?error="+code, http.StatusSeeOther)
		return
	}

	session, err := h.services.SessionService.Create(ctx, user)
	if err != nil {
		// account exists but auto-login failed: send them to the login form
		log.Err(err).Msg("error creating session after signup")
		http.Redirect(w, r, "/auth/login?info="+url.QueryEscape("Account created, please log in."), http.StatusSeeOther)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")
	setSessionCookie(w, session)
	http.Redirect(w, r, withFlash("/", "success", "Welcome, "+user.Username+"!"), http.StatusSeeOther)
}

// logout destroys the session and clears the cookie. It succeeds even
// with a stale or absent cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.services.SessionService.Destroy(r.Context(), cookie.Value); err != nil {
			log.Err(err).Msg("error destroying session on logout")
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, withFlash("/", "info", "You have been logged out."), http.StatusSeeOther)
}

// profile renders the authenticated user's profile page.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "profile", h.newBasePage(r, "Profile"))
}

func loginRedirect(code, returnTo string) string {
	target := "/auth/login?error=" + code
	if returnTo != "/" {
		target += "&return_to=" + url.QueryEscape(returnTo)
	}
	return target
}

// withFlash appends a flash query parameter to a local redirect target.
func withFlash(target, kind, message string) string {
	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + kind + "=" + url.QueryEscape(message)
}
