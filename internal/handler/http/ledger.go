// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/models"
	"github.com/MKhiriev/go-expense-tracker/web"
)

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)

	h.render(w, r, session, http.StatusOK, web.PageHome, pageData{
		User:     session.User,
		ChartURL: h.chartURL(r, *session.User),
	})
}

// chartURL returns the URL of the user's chart, versioned by its
// modification time, or "" when there is none.
func (h *Handler) chartURL(r *http.Request, view models.SessionView) string {
	file, err := h.services.ReportService.OpenChart(r.Context(), view)
	if err != nil {
		return ""
	}
	defer file.Close()

	return fmt.Sprintf("/chart?v=%d", file.ModTime.Unix())
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	form := models.ExpenseForm{
		Title:    r.PostFormValue("title"),
		Amount:   r.PostFormValue("amount"),
		Date:     r.PostFormValue("date"),
		Category: r.PostFormValue("category"),
	}

	session, err := h.services.LedgerService.AddExpense(r.Context(), currentSession(r), form)
	if err != nil {
		h.ledgerFailed(w, r, session, err)
		return
	}

	session.AddFlash(models.FlashSuccess, app.MsgExpenseAdded)
	h.refreshChart(r, *session.User)
	h.redirect(w, r, session, "/homePage")
}

func (h *Handler) addBudget(w http.ResponseWriter, r *http.Request) {
	form := models.BudgetForm{Amount: r.PostFormValue("budget_amount")}

	session, err := h.services.LedgerService.AddBudget(r.Context(), currentSession(r), form)
	if err != nil {
		h.ledgerFailed(w, r, session, err)
		return
	}

	session.AddFlash(models.FlashSuccess, app.MsgBudgetAdded)
	h.redirect(w, r, session, "/homePage")
}

func (h *Handler) resetAll(w http.ResponseWriter, r *http.Request) {
	session, err := h.services.LedgerService.ResetAll(r.Context(), currentSession(r))
	if err != nil {
		h.ledgerFailed(w, r, session, err)
		return
	}

	session.AddFlash(models.FlashSuccess, app.MsgDataReset)
	h.redirect(w, r, session, "/homePage")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session := currentSession(r)

	if session.User != nil {
		if err := h.services.ReportService.DeleteChart(ctx, *session.User); err != nil {
			log.Err(err).Msg("chart was not deleted on logout")
		}
	}

	session, err := h.services.LedgerService.Logout(ctx, session)
	if err != nil {
		log.Err(err).Msg("logout failed")
	}

	h.redirect(w, r, session, "/")
}

// ledgerFailed answers a failed ledger mutation: anonymous sessions go to
// the login page, anything else returns home with an error flash.
func (h *Handler) ledgerFailed(w http.ResponseWriter, r *http.Request, session models.Session, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, service.ErrNotAuthenticated) {
		h.redirect(w, r, session, "/")
		return
	}

	log.Err(err).Int("status", statusFromError(err)).Msg("ledger operation failed")
	session.AddFlash(models.FlashError, messageFor(err, ledgerMessages, app.MsgSomethingWentWrongFlash))
	h.redirect(w, r, session, "/homePage")
}
