package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

const (
	otpDigits      = 6
	resetTokenSize = 32
)

var otpUpperBound = big.NewInt(1_000_000)

type secretGenerator struct {
	random io.Reader
}

// NewSecretGenerator returns a [SecretGenerator] reading from the OS CSPRNG.
func NewSecretGenerator() SecretGenerator {
	return &secretGenerator{random: rand.Reader}
}

func (g *secretGenerator) OTP() (string, error) {
	n, err := rand.Int(g.random, otpUpperBound)
	if err != nil {
		return "", fmt.Errorf("error generating passcode: %w", err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func (g *secretGenerator) ResetToken() (string, error) {
	buf := make([]byte, resetTokenSize)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("error generating reset token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
