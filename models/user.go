// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the persisted account record. One document (or row) per email.
//
// PasswordHash and OTP never leave the store boundary: they are excluded from
// JSON and from the [SessionView] projection.
type User struct {
	// Email is the unique, immutable account key.
	Email string `json:"email" bson:"email"`

	// Name is the display name. It also names the per-user chart image.
	Name string `json:"name" bson:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-" bson:"password"`

	// Budget is the running total of every budget top-up since the last reset.
	Budget int64 `json:"budget" bson:"budget"`

	// Spent is the running total of every expense amount since the last reset.
	Spent int64 `json:"spent" bson:"spent"`

	// Expenses is the append-only history in insertion order. It is never
	// truncated in storage.
	Expenses []Expense `json:"expenses" bson:"expenses"`

	// OTP is present only while a password recovery flow is active.
	OTP *OTP `json:"-" bson:"otp,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName returns the name of the table (or collection) holding users.
func (u User) TableName() string {
	return "users"
}

// OTP is a one-time recovery code bound to a user record.
type OTP struct {
	Code      string    `json:"-" bson:"code"`
	ExpiresAt time.Time `json:"-" bson:"expires_at"`
}

// Valid reports whether code matches and the OTP has not expired at now.
func (o *OTP) Valid(code string, now time.Time) bool {
	if o == nil || o.Code == "" {
		return false
	}

	return o.Code == code && now.Before(o.ExpiresAt)
}
