package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expensesN(n int) []Expense {
	out := make([]Expense, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Expense{
			Date:     fmt.Sprintf("2024-01-%02d", i),
			Amount:   int64(i),
			Title:    fmt.Sprintf("e%d", i),
			Category: "misc",
		})
	}
	return out
}

// ── NewSessionView ────────────────────────────────────────────────────────────

func TestNewSessionView_DropsSecretsAndDerivesBalance(t *testing.T) {
	u := User{
		Email:        "a@x.io",
		Name:         "A",
		PasswordHash: "$2a$10$hash",
		Budget:       500,
		Spent:        120,
		Expenses:     expensesN(2),
		OTP:          &OTP{Code: "1234", ExpiresAt: time.Now().Add(time.Minute)},
	}

	v := NewSessionView(u)

	assert.Equal(t, "a@x.io", v.Email)
	assert.Equal(t, "A", v.Name)
	assert.Equal(t, int64(500), v.Budget)
	assert.Equal(t, int64(120), v.Spent)
	assert.Equal(t, int64(380), v.Balance)
	assert.Len(t, v.Expenses, 2)
}

func TestNewSessionView_KeepsOnlyLastFive(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		wantLen   int
		wantFirst string
	}{
		{name: "empty", stored: 0, wantLen: 0},
		{name: "fewer than window", stored: 3, wantLen: 3, wantFirst: "e1"},
		{name: "exactly window", stored: 5, wantLen: 5, wantFirst: "e1"},
		{name: "more than window", stored: 7, wantLen: 5, wantFirst: "e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSessionView(User{Expenses: expensesN(tt.stored)})
			require.Len(t, v.Expenses, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, v.Expenses[0].Title)
				assert.Equal(t, fmt.Sprintf("e%d", tt.stored), v.Expenses[tt.wantLen-1].Title)
			}
		})
	}
}

func TestNewSessionView_DoesNotAliasStoredExpenses(t *testing.T) {
	u := User{Expenses: expensesN(3)}
	v := NewSessionView(u)

	v.Expenses[0].Title = "changed"
	assert.Equal(t, "e1", u.Expenses[0].Title)
}

func TestNewSessionView_NegativeBalance(t *testing.T) {
	v := NewSessionView(User{Budget: 0, Spent: 120})
	assert.Equal(t, int64(-120), v.Balance)
}

// ── Session ───────────────────────────────────────────────────────────────────

func TestSession_Flashes(t *testing.T) {
	var s Session
	s.AddFlash(FlashSuccess, "ok")
	s.AddFlash(FlashError, "bad")

	got := s.PopFlashes()
	require.Len(t, got, 2)
	assert.Equal(t, Flash{Kind: FlashSuccess, Message: "ok"}, got[0])
	assert.Empty(t, s.PopFlashes())
}

func TestSession_WithUser(t *testing.T) {
	s := Session{Recovery: Recovery{Email: "a@x.io", Stage: RecoveryVerified}}
	assert.False(t, s.Authenticated())

	next := s.WithUser(SessionView{Email: "a@x.io"})
	assert.True(t, next.Authenticated())
	assert.False(t, s.Authenticated())
	assert.Equal(t, s.Recovery, next.Recovery)
}

// ── OTP ───────────────────────────────────────────────────────────────────────

func TestOTP_Valid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	otp := &OTP{Code: "4821", ExpiresAt: now.Add(10 * time.Minute)}

	assert.True(t, otp.Valid("4821", now))
	assert.False(t, otp.Valid("4820", now))
	assert.False(t, otp.Valid("4821", now.Add(10*time.Minute)))

	var none *OTP
	assert.False(t, none.Valid("4821", now))
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, VersionInfo{Version: "v1.2.0", Date: "N/A", Commit: "abc123"}, info.VersionInfo())
}

func TestSession_IsEmpty(t *testing.T) {
	assert.True(t, Session{}.IsEmpty())
	assert.False(t, Session{}.WithUser(SessionView{Email: "a@x.io"}).IsEmpty())
	assert.False(t, Session{Recovery: Recovery{Email: "a@x.io", Stage: RecoveryAwaitingOTP}}.IsEmpty())

	s := Session{}
	s.AddFlash(FlashError, "oops")
	assert.False(t, s.IsEmpty())
	s.PopFlashes()
	assert.True(t, s.IsEmpty())
}
