// Package http implements the web entry layer of the expense tracker.
//
// It serves server-rendered HTML pages over a chi router. Session state is
// carried in a signed cookie, decoded once per request by withSession and
// written back by the handlers before they respond. Request tracing, access
// logging and the login gate are middlewares; every handler delegates its
// business decisions to the service layer and only maps the outcome onto a
// redirect, a flash message or a re-rendered form.
package http
