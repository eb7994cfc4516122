package http

import (
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// requireUser lets only logged-in sessions through. Anonymous requests are
// sent to the login page with no message.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentSession(r).Authenticated() {
			logger.FromRequest(r).Debug().Str("uri", r.URL.Path).Msg("anonymous request to gated route")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
