package auth

import (
	"fmt"

	"parcels/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher uses bcrypt.DefaultCost when cost is zero.
func NewBcryptHasher(cost int) (BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return BcryptHasher{}, errs.NewValueIsOutOfRangeError("bcrypt_cost", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return BcryptHasher{cost: cost}, nil
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (h BcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
