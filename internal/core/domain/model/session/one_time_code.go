package session

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"parcels/internal/pkg/errs"
)

const (
	CodeLength = 6

	DefaultCodeTTL = 5 * time.Minute
	MinCodeTTL     = 2 * time.Minute
	MaxCodeTTL     = 5 * time.Minute

	TemporarySessionTTL = 24 * time.Hour
)

var (
	codePattern = regexp.MustCompile(`^[0-9]{6}$`)

	// ErrCodeNotFound is returned when no code is pending for the e-mail.
	ErrCodeNotFound = errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("no pending code for this email"))

	// ErrCodeExpired is returned when the pending code is past its expiry.
	ErrCodeExpired = errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("code has expired"))

	// ErrCodeMismatch is returned when the submitted code differs from the pending one.
	ErrCodeMismatch = errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("code does not match"))
)

// OneTimeCode is a 6-digit code sent out-of-band to prove control of an e-mail.
type OneTimeCode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// ValidateCodeTTL keeps ttl within [MinCodeTTL, MaxCodeTTL].
func ValidateCodeTTL(ttl time.Duration) error {
	if ttl < MinCodeTTL || ttl > MaxCodeTTL {
		return errs.NewValueIsOutOfRangeError("otp_ttl", ttl, MinCodeTTL, MaxCodeTTL)
	}
	return nil
}

// NewOneTimeCode draws a uniformly random 6-digit code from crypto/rand.
func NewOneTimeCode(email string, now time.Time, ttl time.Duration) (OneTimeCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return OneTimeCode{}, fmt.Errorf("generate one-time code: %w", err)
	}
	return OneTimeCode{
		Email:     email,
		Code:      fmt.Sprintf("%0*d", CodeLength, n.Int64()),
		ExpiresAt: now.Add(ttl),
	}, nil
}

// ValidateCodeFormat checks a submitted code is exactly six digits.
func ValidateCodeFormat(code string) error {
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("code must be %d digits", CodeLength))
	}
	return nil
}

// IsExpired reports whether the code is unusable at now.
func (c OneTimeCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Matches compares in constant time.
func (c OneTimeCode) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) == 1
}
