// Package userrepo persists user aggregates in the users table.
package userrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row shape of the users table. Roles are stored by code.
type UserDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName         string
	SecondName        string
	LastName          string
	SecondLastName    string
	DocumentNumber    string `gorm:"uniqueIndex"`
	Email             string `gorm:"uniqueIndex"`
	PasswordHash      string
	Role              string `gorm:"index"`
	Address           string
	Phone             string
	IsEmailVerified   bool
	VerificationToken *string `gorm:"uniqueIndex"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	p := u.Profile()

	var token *string
	if t := u.VerificationToken(); t != "" {
		token = &t
	}

	return UserDTO{
		ID:                u.ID().Bytes(),
		FirstName:         p.FirstName,
		SecondName:        p.SecondName,
		LastName:          p.LastName,
		SecondLastName:    p.SecondLastName,
		DocumentNumber:    p.DocumentNumber,
		Email:             p.Email,
		PasswordHash:      u.PasswordHash(),
		Role:              u.Role().String(),
		Address:           p.Address,
		Phone:             p.Phone,
		IsEmailVerified:   u.IsEmailVerified(),
		VerificationToken: token,
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var token string
	if dto.VerificationToken != nil {
		token = *dto.VerificationToken
	}

	profile := user.Profile{
		FirstName:      dto.FirstName,
		SecondName:     dto.SecondName,
		LastName:       dto.LastName,
		SecondLastName: dto.SecondLastName,
		DocumentNumber: dto.DocumentNumber,
		Email:          dto.Email,
		Address:        dto.Address,
		Phone:          dto.Phone,
	}

	return user.RestoreUser(
		id, profile, role, dto.PasswordHash, dto.IsEmailVerified, token,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
