// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrParsingTemplates is returned by NewHandler when the embedded page
	// templates cannot be parsed.
	ErrParsingTemplates = errors.New("error parsing page templates")

	// ErrSessionNotSaved is logged when the session cookie cannot be signed.
	ErrSessionNotSaved = errors.New("session was not saved")

	// ErrSessionTooLarge means the signed session does not fit in a cookie.
	ErrSessionTooLarge = errors.New("session exceeds cookie size limit")
)
