package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into salted one-way hashes and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Compare(hash, password string) error
}

// OTPGenerator produces one-time recovery codes.
type OTPGenerator interface {
	// Generate returns a fresh code.
	Generate() (string, error)
}
