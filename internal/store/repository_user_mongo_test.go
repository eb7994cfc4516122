package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/MKhiriev/go-expense-tracker/models"
)

func TestAppendExpenseUpdate(t *testing.T) {
	expense := models.Expense{Date: "2026-01-01", Amount: 75, Title: "Lunch", Category: "Food"}

	update := appendExpenseUpdate(expense)

	assert.Equal(t, bson.M{"expenses": expense}, update["$push"])
	assert.Equal(t, bson.M{"spent": int64(75)}, update["$inc"])
}

func TestIncrementBudgetUpdate(t *testing.T) {
	assert.Equal(t, bson.M{"$inc": bson.M{"budget": int64(-20)}}, incrementBudgetUpdate(-20))
}

func TestResetTotalsUpdate_KeepsHistory(t *testing.T) {
	update := resetTotalsUpdate()

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(0), set["budget"])
	assert.Equal(t, int64(0), set["spent"])
	assert.NotContains(t, set, "expenses")
}

func TestOTPUpdatesAndFilter(t *testing.T) {
	local := time.Date(2026, 1, 1, 10, 0, 0, 0, time.FixedZone("X", 7200))

	set := setOTPUpdate(models.OTP{Code: "4321", ExpiresAt: local})["$set"].(bson.M)
	otp := set["otp"].(bson.M)
	assert.Equal(t, "4321", otp["code"])
	assert.Equal(t, time.UTC, otp["expires_at"].(time.Time).Location())

	filter := consumeOTPFilter("a@x.io", "4321", local)
	assert.Equal(t, "a@x.io", filter["email"])
	assert.Equal(t, "4321", filter["otp.code"])
	assert.Equal(t, bson.M{"$gt": local.UTC()}, filter["otp.expires_at"])

	assert.Equal(t, bson.M{"$unset": bson.M{"otp": ""}}, consumeOTPUpdate())
}

func TestUserDocument_ToModel(t *testing.T) {
	expires := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("embedded otp document", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{
			"email": "a@x.io",
			"otp":   bson.M{"code": "1234", "expires_at": expires},
		})
		require.NoError(t, err)

		var doc userDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))

		user := doc.toModel()
		require.NotNil(t, user.OTP)
		assert.Equal(t, "1234", user.OTP.Code)
		assert.True(t, expires.Equal(user.OTP.ExpiresAt))
		assert.NotNil(t, user.Expenses)
	})

	t.Run("legacy string otp is ignored", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"email": "a@x.io", "otp": "1234", "budget": int64(10)})
		require.NoError(t, err)

		var doc userDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))

		user := doc.toModel()
		assert.Nil(t, user.OTP)
		assert.Equal(t, int64(10), user.Budget)
	})

	t.Run("no otp", func(t *testing.T) {
		user := userDocument{Email: "a@x.io"}.toModel()
		assert.Nil(t, user.OTP)
		assert.Empty(t, user.Expenses)
	})
}
