package queries

import (
	"database/sql"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserResponse is a user without credentials.
type UserResponse struct {
	ID              kernel.UUID
	Profile         user.Profile
	Role            user.Role
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const userSelect = `
	SELECT
		u.id,
		u.first_name,
		u.second_name,
		u.last_name,
		u.second_last_name,
		u.document_number,
		u.email,
		u.address,
		u.phone,
		u.role,
		u.is_email_verified,
		u.created_at,
		u.updated_at
	FROM users u`

func scanUsers(rows *sql.Rows) ([]UserResponse, error) {
	users := make([]UserResponse, 0)

	for rows.Next() {
		var (
			resp UserResponse
			id   uuid.UUID
			role string
		)

		err := rows.Scan(
			&id,
			&resp.Profile.FirstName,
			&resp.Profile.SecondName,
			&resp.Profile.LastName,
			&resp.Profile.SecondLastName,
			&resp.Profile.DocumentNumber,
			&resp.Profile.Email,
			&resp.Profile.Address,
			&resp.Profile.Phone,
			&role,
			&resp.IsEmailVerified,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Role, err = user.ParseRole(role); err != nil {
			return nil, err
		}

		users = append(users, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
