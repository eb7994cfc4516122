// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/migrations"
)

func testDB(dialect migrations.Dialect) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_selectUserQuery_ColumnsAndPlaceholders(t *testing.T) {
	query, args, err := testDB(migrations.Postgres).selectUserQuery("a@x.io")
	require.NoError(t, err)

	require.Equal(t, []any{"a@x.io"}, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where email = $1")

	for _, col := range userColumns {
		require.Contains(t, q, col, "column %q must be selected", col)
	}
}

func Test_selectUserQuery_SQLiteUsesQuestionMarks(t *testing.T) {
	query, _, err := testDB(migrations.SQLite).selectUserQuery("a@x.io")
	require.NoError(t, err)

	assert.Contains(t, query, "email = ?")
	assert.NotContains(t, query, "$1")
}

func Test_appendExpenseQuery_PerDialect(t *testing.T) {
	tests := []struct {
		dialect  migrations.Dialect
		contains []string
	}{
		{
			dialect:  migrations.Postgres,
			contains: []string{"expenses || jsonb_build_array($1::jsonb)", "spent = spent + $2", "email = $3", "RETURNING email"},
		},
		{
			dialect:  migrations.SQLite,
			contains: []string{"json_insert(expenses, '$[#]', json(?))", "spent = spent + ?", "RETURNING email"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			query, args, err := testDB(tt.dialect).appendExpenseQuery("a@x.io", 25, `{"amount":25}`)
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, []any{`{"amount":25}`, int64(25), "a@x.io"}, args)
		})
	}
}

func Test_consumeOTPQuery_GuardsCodeAndExpiry(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := testDB(migrations.Postgres).consumeOTPQuery("a@x.io", "1234", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "set otp_code = $1, otp_expires_at = $2")
	assert.Contains(t, q, "otp_expires_at > ")
	assert.Contains(t, q, "email = ")
	assert.Contains(t, q, "otp_code = ")

	assert.Len(t, args, 5)
	assert.Contains(t, args, "1234")
	assert.Contains(t, args, "a@x.io")
	assert.Contains(t, args, now)
}

func Test_storedTime(t *testing.T) {
	in := time.Date(2026, 5, 1, 15, 30, 45, 123456789, time.FixedZone("UTC+3", 3*3600))

	out := storedTime(in)
	assert.Equal(t, time.UTC, out.Location())
	assert.Zero(t, out.Nanosecond())
	assert.Equal(t, 12, out.Hour())
}
