package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-expense-tracker/web"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.GetHead)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))
	router.Get("/version", h.version)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.loginPage)
		r.Post("/", h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/forgot_password", h.forgotPasswordPage)
		r.Post("/forgot_password", h.forgotPassword)
		r.Get("/resetPassword", h.resetPasswordPage)
		r.Post("/resetPassword", h.resetPassword)
	})

	// routes for logged-in users
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Get("/homePage", h.homePage)
		r.Post("/homePage", h.homePage)
		r.Post("/add_expense", h.addExpense)
		r.Post("/add_budget", h.addBudget)
		r.Get("/reset_all", h.resetAll)
		r.Post("/reset_all", h.resetAll)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
		r.Post("/download_expense", h.downloadExpense)
		r.Get("/chart", h.chart)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
