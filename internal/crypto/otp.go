package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

const (
	otpMin = 1000
	otpMax = 9999
)

// otpGenerator draws 4-digit codes uniformly from [1000, 9999].
type otpGenerator struct {
	random io.Reader
}

// NewOTPGenerator constructs an [OTPGenerator] reading from crypto/rand.
func NewOTPGenerator() OTPGenerator {
	return &otpGenerator{random: rand.Reader}
}

func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(g.random, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
