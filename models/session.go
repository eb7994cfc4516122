// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecentExpensesWindow is how many of the latest expenses a session view shows.
const RecentExpensesWindow = 5

// SessionView is the sanitised, derived projection of a [User] kept in the
// session. It is never persisted.
type SessionView struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Budget  int64  `json:"budget"`
	Spent   int64  `json:"spent"`
	Balance int64  `json:"balance"`

	// Expenses holds at most RecentExpensesWindow entries, in storage order.
	Expenses []Expense `json:"expenses"`
}

// NewSessionView projects a freshly read or freshly updated user record into
// its session form: credentials and recovery state are dropped, balance is
// derived from the record totals, and only the latest expenses are kept.
func NewSessionView(u User) SessionView {
	return SessionView{
		Email:    u.Email,
		Name:     u.Name,
		Budget:   u.Budget,
		Spent:    u.Spent,
		Balance:  u.Budget - u.Spent,
		Expenses: Last(u.Expenses, RecentExpensesWindow),
	}
}

// RecoveryStage is the position of a session in the password recovery flow.
type RecoveryStage string

const (
	RecoveryIdle        RecoveryStage = ""
	RecoveryAwaitingOTP RecoveryStage = "awaiting_otp"
	RecoveryVerified    RecoveryStage = "verified"
)

// Recovery binds a session to the email whose password is being recovered.
type Recovery struct {
	Email string        `json:"email,omitempty"`
	Stage RecoveryStage `json:"stage,omitempty"`
}

// FlashKind classifies a one-shot message shown on the next rendered page.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Session is the per-client state carried between requests. A nil User means
// the client is not logged in.
type Session struct {
	User     *SessionView `json:"user,omitempty"`
	Recovery Recovery     `json:"recovery"`
	Flashes  []Flash      `json:"flashes,omitempty"`
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// WithUser returns a copy of s whose view is replaced with v.
func (s Session) WithUser(v SessionView) Session {
	s.User = &v
	return s
}

// AddFlash queues a message for the next page render.
func (s *Session) AddFlash(kind FlashKind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns queued messages and clears the queue.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// IsEmpty reports whether s carries no state worth persisting.
func (s Session) IsEmpty() bool {
	return !s.Authenticated() && s.Recovery == (Recovery{}) && len(s.Flashes) == 0
}
