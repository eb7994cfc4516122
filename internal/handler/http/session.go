package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/models"
)

const sessionCookieName = "session"

// maxCookieSize is the largest cookie value browsers are required to keep.
const maxCookieSize = 4096

// sessionStore keeps [models.Session] in a signed cookie.
type sessionStore struct {
	signKey  string
	issuer   string
	duration time.Duration
	secure   bool
}

func newSessionStore(cfg config.App) *sessionStore {
	return &sessionStore{
		signKey:  cfg.SessionSecret,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		secure:   cfg.SecureCookie,
	}
}

// load decodes the session cookie. A missing, expired or tampered cookie
// yields an empty session.
func (s *sessionStore) load(r *http.Request) models.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return models.Session{}
	}

	token, err := utils.ValidateAndParseSessionToken(cookie.Value, s.signKey, s.issuer)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("discarding invalid session cookie")
		return models.Session{}
	}

	return token.Session
}

// save writes session as the cookie of the response, or expires the cookie
// when session is empty. It must run before the response header is written.
func (s *sessionStore) save(w http.ResponseWriter, session models.Session) error {
	if session.IsEmpty() {
		s.clear(w)
		return nil
	}

	token, err := utils.GenerateSessionToken(s.issuer, session, s.duration, s.signKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	value := token.String()
	if len(value) > maxCookieSize {
		return fmt.Errorf("%w: %w (%d bytes)", ErrSessionNotSaved, ErrSessionTooLarge, len(value))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  token.ExpiresAt.Time,
		MaxAge:   int(s.duration.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (s *sessionStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// withSession decodes the session cookie into the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.sessions.load(r)
		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), &session)))
	})
}

// currentSession returns a copy of the request session.
func currentSession(r *http.Request) models.Session {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}
	}
	return *session
}

// commit saves session to the response cookie and makes it the request
// session for the rest of the handler.
func (h *Handler) commit(w http.ResponseWriter, r *http.Request, session models.Session) {
	if err := h.sessions.save(w, session); err != nil {
		logger.FromRequest(r).Err(err).Msg("saving session failed")
	}

	if current, ok := utils.GetSessionFromContext(r.Context()); ok {
		*current = session
	}
}

// redirect commits session and answers 303 See Other to path.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, session models.Session, path string) {
	h.commit(w, r, session)
	http.Redirect(w, r, path, http.StatusSeeOther)
}
