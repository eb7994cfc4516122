// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// A browser that lands on a form-only route with GET or HEAD (a bookmark, a
// refresh after a redirect) is sent back to the login page with
// 303 See Other. Any other method the route does not handle is answered with
// 404 Not Found instead of chi's default 405, hiding the route from callers
// using unsupported methods.
//
// If the requested method IS registered for the matched route the request is
// forwarded to the router's normal pipeline.
//
// Only exact route patterns are compared; wildcard segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; ok {
			router.ServeHTTP(w, r)
			return
		}

		if requestedHTTPMethod == http.MethodGet || requestedHTTPMethod == http.MethodHead {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
