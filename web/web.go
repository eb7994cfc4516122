// Package web embeds the HTML templates and static assets served by the
// HTTP handler.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	PageLogin          = "login.html"
	PageRegister       = "register.html"
	PageHome           = "homePage.html"
	PageForgotPassword = "forgotPassword.html"
	PageResetPassword  = "resetPassword.html"
)

// Templates parses every page together with the shared partials.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"rupees": formatAmount,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at its own directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
