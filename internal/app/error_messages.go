// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown by the web
// pages of the expense tracker, either as flash messages after a redirect or
// as the message of a re-rendered form.
package app

// Flash messages queued for the home page.
const (
	MsgLoginSuccessful = "Login Successfully!"
	MsgExpenseAdded    = "Expense Added Successfully!"
	MsgBudgetAdded     = "Budget Added Successfully!"
	MsgDataReset       = "Data Reset Successfully"

	// MsgInvalidDataFound is flashed when a ledger form fails validation.
	MsgInvalidDataFound = "Invalid Data Found!"

	// MsgSomethingWentWrongFlash is flashed when a ledger operation or an
	// export fails for a reason the user cannot fix.
	MsgSomethingWentWrongFlash = "Something went wrong!"
)

// Form messages rendered next to the submitted form.
const (
	MsgPasswordIsNotMatching  = "Password Is Not Matching"
	MsgInvalidCredential      = "Invalid Credential"
	MsgEmailAlreadyRegistered = "Email Already Registered"
	MsgIncorrectOTP           = "Incorrect OTP"
	MsgPasswordNotMatching    = "Password Not Matching"
	MsgSomethingWentWrong     = "Something Went Wrong"

	// MsgOTPSentFormat takes the email the code was sent to. It is shown for
	// unknown addresses too.
	MsgOTPSentFormat = "OTP Sent Successfully On %s"
)

// Plain-text bodies of non-HTML responses.
const (
	MsgChartNotFound       = "chart not found"
	MsgInternalServerError = "internal server error"
)
