package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/models"
	"github.com/MKhiriev/go-expense-tracker/web"
)

func (h *Handler) forgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)

	h.render(w, r, session, http.StatusOK, web.PageForgotPassword, pageData{
		Email:   session.Recovery.Email,
		OTPSent: session.Recovery.Stage == models.RecoveryAwaitingOTP,
	})
}

// forgotPassword sends an OTP, or verifies one when the form carries it.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session := currentSession(r)

	email := strings.TrimSpace(r.PostFormValue("email"))

	if otp := strings.TrimSpace(r.PostFormValue("otp")); otp != "" {
		verified, err := h.services.RecoveryService.SubmitOTP(ctx, session, email, otp)
		if err != nil {
			status := statusFromError(err)
			log.Err(err).Int("status", status).Msg("otp verification failed")
			h.render(w, r, session, status, web.PageForgotPassword, pageData{
				Message: messageFor(err, recoveryMessages, app.MsgSomethingWentWrong),
				Email:   email,
				OTPSent: true,
			})
			return
		}

		h.redirect(w, r, verified, "/resetPassword")
		return
	}

	awaiting, err := h.services.RecoveryService.RequestReset(ctx, session, email)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("password reset request failed")
		h.render(w, r, session, status, web.PageForgotPassword, pageData{
			Message: messageFor(err, recoveryMessages, app.MsgSomethingWentWrong),
			Email:   email,
		})
		return
	}

	h.render(w, r, awaiting, http.StatusOK, web.PageForgotPassword, pageData{
		Message: fmt.Sprintf(app.MsgOTPSentFormat, email),
		Email:   email,
		OTPSent: true,
	})
}

func (h *Handler) resetPasswordPage(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)
	if session.Recovery.Stage != models.RecoveryVerified {
		h.redirect(w, r, session, "/forgot_password")
		return
	}

	h.render(w, r, session, http.StatusOK, web.PageResetPassword, pageData{})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session := currentSession(r)

	form := models.PasswordResetForm{
		NewPassword:     r.PostFormValue("new_password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	updated, err := h.services.RecoveryService.SetNewPassword(r.Context(), session, form)
	if err != nil {
		if errors.Is(err, service.ErrRecoveryNotVerified) {
			h.redirect(w, r, session, "/forgot_password")
			return
		}

		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("password reset failed")
		h.render(w, r, session, status, web.PageResetPassword, pageData{
			Message: messageFor(err, recoveryMessages, app.MsgSomethingWentWrong),
		})
		return
	}

	h.redirect(w, r, updated, "/")
}
