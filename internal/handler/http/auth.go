package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/models"
	"github.com/MKhiriev/go-expense-tracker/web"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)
	if session.Authenticated() {
		h.redirect(w, r, session, "/homePage")
		return
	}

	h.render(w, r, session, http.StatusOK, web.PageLogin, pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session := currentSession(r)

	form := models.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	view, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		status := statusFromError(err)
		if errors.Is(err, service.ErrInvalidDataProvided) {
			status = http.StatusUnauthorized
		}

		log.Err(err).Int("status", status).Msg("login failed")
		h.render(w, r, session, status, web.PageLogin, pageData{
			Message: messageFor(err, loginMessages, app.MsgSomethingWentWrong),
		})
		return
	}

	session = session.WithUser(view)
	session.Recovery = models.Recovery{}
	session.AddFlash(models.FlashSuccess, app.MsgLoginSuccessful)

	h.refreshChart(r, view)
	h.redirect(w, r, session, "/homePage")
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, currentSession(r), http.StatusOK, web.PageRegister, pageData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session := currentSession(r)

	form := models.RegistrationForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	if err := h.services.AuthService.Register(ctx, form); err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("registration failed")
		h.render(w, r, session, status, web.PageRegister, pageData{
			Message: messageFor(err, registerMessages, app.MsgSomethingWentWrong),
		})
		return
	}

	h.redirect(w, r, session, "/")
}

// refreshChart redraws the chart of view. Failures are logged only.
func (h *Handler) refreshChart(r *http.Request, view models.SessionView) {
	result, err := h.services.ReportService.RenderChart(r.Context(), view)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("chart was not rendered")
		return
	}

	logger.FromRequest(r).Debug().Bool("rendered", result.Rendered).Str("file", result.FileName).Msg("chart refreshed")
}
