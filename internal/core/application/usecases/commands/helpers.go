package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
)

const (
	verificationTokenBytes = 32
	minPasswordLength      = 6
)

// newVerificationToken returns 64 hex characters from crypto/rand.
func newVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func verificationLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/auth/verify-email/" + token
}

func validatePassword(name, password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("must have at least %d characters", minPasswordLength))
	}
	return nil
}
