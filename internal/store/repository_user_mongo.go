package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// mongoUserRepository is the MongoDB implementation of [UserRepository].
// Ledger mutations use FindOneAndUpdate with ReturnDocument(After) so the
// caller gets the post-update document from the same atomic operation.
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the user
// collection of db.
func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  db.database.Collection(userCollection),
		logger: logger,
	}
}

// userDocument mirrors [models.User] on the wire. OTP is kept raw because
// documents written by earlier deployments store it as a bare string.
type userDocument struct {
	Email        string           `bson:"email"`
	Name         string           `bson:"name"`
	PasswordHash string           `bson:"password"`
	Budget       int64            `bson:"budget"`
	Spent        int64            `bson:"spent"`
	Expenses     []models.Expense `bson:"expenses"`
	OTP          bson.RawValue    `bson:"otp,omitempty"`
	CreatedAt    time.Time        `bson:"created_at"`
}

func (d userDocument) toModel() models.User {
	user := models.User{
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Budget:       d.Budget,
		Spent:        d.Spent,
		Expenses:     d.Expenses,
		CreatedAt:    d.CreatedAt,
	}
	if user.Expenses == nil {
		user.Expenses = []models.Expense{}
	}

	// A legacy string OTP has no expiry and is treated as absent.
	if d.OTP.Type == bson.TypeEmbeddedDocument {
		var otp models.OTP
		if err := d.OTP.Unmarshal(&otp); err == nil {
			user.OTP = &otp
		}
	}

	return user
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) error {
	if user.Expenses == nil {
		user.Expenses = []models.Expense{}
	}
	user.OTP = nil

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("unique email violated")
			return ErrEmailAlreadyExists
		}
		return r.storeError(ctx, "*mongoUserRepository.CreateUser", err)
	}

	return nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, emailFilter(email)).Decode(&doc); err != nil {
		return models.User{}, r.storeError(ctx, "*mongoUserRepository.FindUserByEmail", err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) AppendExpense(ctx context.Context, email string, expense models.Expense) (models.User, error) {
	return r.findOneAndUpdate(ctx, "*mongoUserRepository.AppendExpense", email, appendExpenseUpdate(expense))
}

func (r *mongoUserRepository) IncrementBudget(ctx context.Context, email string, amount int64) (models.User, error) {
	return r.findOneAndUpdate(ctx, "*mongoUserRepository.IncrementBudget", email, incrementBudgetUpdate(amount))
}

func (r *mongoUserRepository) ResetTotals(ctx context.Context, email string) (models.User, error) {
	return r.findOneAndUpdate(ctx, "*mongoUserRepository.ResetTotals", email, resetTotalsUpdate())
}

func (r *mongoUserRepository) SetPasswordHash(ctx context.Context, email, passwordHash string) error {
	return r.updateOne(ctx, "*mongoUserRepository.SetPasswordHash", emailFilter(email), setPasswordHashUpdate(passwordHash), ErrNoUserWasFound)
}

func (r *mongoUserRepository) SetOTP(ctx context.Context, email string, otp models.OTP) error {
	return r.updateOne(ctx, "*mongoUserRepository.SetOTP", emailFilter(email), setOTPUpdate(otp), ErrNoUserWasFound)
}

func (r *mongoUserRepository) ConsumeOTP(ctx context.Context, email, code string, now time.Time) error {
	return r.updateOne(ctx, "*mongoUserRepository.ConsumeOTP", consumeOTPFilter(email, code, now), consumeOTPUpdate(), ErrOTPMismatch)
}

func (r *mongoUserRepository) findOneAndUpdate(ctx context.Context, funcName, email string, update bson.M) (models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	if err := r.users.FindOneAndUpdate(ctx, emailFilter(email), update, opts).Decode(&doc); err != nil {
		return models.User{}, r.storeError(ctx, funcName, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) updateOne(ctx context.Context, funcName string, filter, update bson.M, notFound error) error {
	result, err := r.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return r.storeError(ctx, funcName, err)
	}
	if result.MatchedCount == 0 {
		return notFound
	}

	return nil
}

func (r *mongoUserRepository) storeError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoUserWasFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("unexpected mongo error")
	return fmt.Errorf("%w: unexpected mongo error: %w", ErrStoreUnavailable, err)
}

// ── filters and update documents ─────────────────────────────────────────────

func emailFilter(email string) bson.M {
	return bson.M{"email": email}
}

func appendExpenseUpdate(expense models.Expense) bson.M {
	return bson.M{
		"$push": bson.M{"expenses": expense},
		"$inc":  bson.M{"spent": expense.Amount},
	}
}

func incrementBudgetUpdate(amount int64) bson.M {
	return bson.M{"$inc": bson.M{"budget": amount}}
}

func resetTotalsUpdate() bson.M {
	return bson.M{"$set": bson.M{"budget": int64(0), "spent": int64(0)}}
}

func setPasswordHashUpdate(passwordHash string) bson.M {
	return bson.M{"$set": bson.M{"password": passwordHash}}
}

func setOTPUpdate(otp models.OTP) bson.M {
	return bson.M{"$set": bson.M{"otp": bson.M{
		"code":       otp.Code,
		"expires_at": otp.ExpiresAt.UTC(),
	}}}
}

func consumeOTPFilter(email, code string, now time.Time) bson.M {
	return bson.M{
		"email":          email,
		"otp.code":       code,
		"otp.expires_at": bson.M{"$gt": now.UTC()},
	}
}

func consumeOTPUpdate() bson.M {
	return bson.M{"$unset": bson.M{"otp": ""}}
}
