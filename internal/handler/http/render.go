package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// pageData is the root value of every page template.
type pageData struct {
	// Message is an inline form message shown above the form.
	Message string
	Flashes []models.Flash

	User *models.SessionView

	// Email and OTPSent drive the forgot-password form.
	Email   string
	OTPSent bool

	ChartURL string
}

// render executes page with data and writes it with status. Queued flashes
// are moved from the session into data, and the session is committed before
// anything is written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, session models.Session, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	data.Flashes = append(data.Flashes, session.PopFlashes()...)
	if data.User == nil {
		data.User = session.User
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, page, data); err != nil {
		log.Err(err).Str("page", page).Msg("error executing page template")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.commit(w, r, session)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("error writing page")
	}
}
