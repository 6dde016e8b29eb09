package session

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
)

const (
	DefaultFullTTL      = 7 * 24 * time.Hour
	DefaultTemporaryTTL = 24 * time.Hour
)

// Claims is what a session token asserts about its bearer.
type Claims struct {
	TokenID   string
	UserID    kernel.UUID
	Email     string
	Role      user.Role
	Temporary bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token is a signed session token and the claims it carries.
type Token struct {
	Value  string
	Claims Claims
}
