package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/models"
)

func (h *Handler) downloadExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session := currentSession(r)

	window := models.ExportWindow(r.PostFormValue("category"))

	file, err := h.services.ReportService.ExportCSV(r.Context(), session.User.Email, window)
	if err != nil {
		log.Err(err).Str("window", string(window)).Msg("export failed")
		session.AddFlash(models.FlashError, app.MsgSomethingWentWrongFlash)
		h.redirect(w, r, session, "/homePage")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(file.Content); err != nil {
		log.Err(err).Msg("error writing csv export")
	}
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session := currentSession(r)

	file, err := h.services.ReportService.OpenChart(r.Context(), *session.User)
	if err != nil {
		if errors.Is(err, store.ErrChartNotFound) {
			http.Error(w, app.MsgChartNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error opening chart")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, file.Name, file.ModTime, file)
}
