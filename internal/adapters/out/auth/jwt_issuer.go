// Package auth signs session tokens with golang-jwt and hashes passwords
// with bcrypt.
package auth

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "parcels"

// MinSecretLength is the shortest accepted HS256 signing secret.
const MinSecretLength = 32

// Claims is the JWT body of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	Temporary bool   `json:"temporary,omitempty"`
}

// JWTIssuer issues HS256 session tokens. Full sessions last fullTTL,
// temporary ones temporaryTTL.
type JWTIssuer struct {
	secret       []byte
	fullTTL      time.Duration
	temporaryTTL time.Duration
	clock        kernel.Clock
}

func NewJWTIssuer(secret string, fullTTL, temporaryTTL time.Duration, clock kernel.Clock) (*JWTIssuer, error) {
	if len(secret) < MinSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("jwt_secret length", len(secret), MinSecretLength, "unbounded")
	}
	if fullTTL <= 0 || temporaryTTL <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("jwt_ttl", errors.New("must be positive"))
	}
	return &JWTIssuer{secret: []byte(secret), fullTTL: fullTTL, temporaryTTL: temporaryTTL, clock: clock}, nil
}

func (i *JWTIssuer) Issue(u *user.User, temporary bool, now time.Time) (session.Token, error) {
	if err := u.Validate(); err != nil {
		return session.Token{}, err
	}

	ttl := i.fullTTL
	if temporary {
		ttl = i.temporaryTTL
	}

	claims := session.Claims{
		TokenID:   uuid.NewString(),
		UserID:    u.ID(),
		Email:     u.Email(),
		Role:      u.Role(),
		Temporary: temporary,
		IssuedAt:  now.Truncate(time.Second),
		ExpiresAt: now.Add(ttl).Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID,
			Issuer:    issuerName,
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		Email:     claims.Email,
		Role:      claims.Role.String(),
		Temporary: temporary,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return session.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return session.Token{Value: signed, Claims: claims}, nil
}

func (i *JWTIssuer) Parse(raw string) (session.Claims, error) {
	parsed := &Claims{}
	_, err := jwt.ParseWithClaims(raw, parsed,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return session.Claims{}, errs.NewNotAuthenticatedErrorWithCause("token expired", err)
		}
		return session.Claims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	userID, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return session.Claims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token subject", err)
	}
	role, err := user.ParseRole(parsed.Role)
	if err != nil {
		return session.Claims{}, errs.NewNotAuthenticatedErrorWithCause("invalid token role", err)
	}

	claims := session.Claims{
		TokenID:   parsed.ID,
		UserID:    userID,
		Email:     parsed.Email,
		Role:      role,
		Temporary: parsed.Temporary,
		ExpiresAt: parsed.ExpiresAt.UTC(),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.UTC()
	}
	return claims, nil
}
