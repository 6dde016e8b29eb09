package queries

import (
	"context"

	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	actor := query.Actor()
	if !actor.Role.IsStaff() && !actor.UserID.IsEqual(query.UserID()) {
		return UserResponse{}, errs.NewForbiddenError("read another user")
	}

	rows, err := h.db.WithContext(ctx).Raw(userSelect+`
		WHERE u.id = ?`, query.UserID().String()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return UserResponse{}, err
	}
	if len(users) == 0 {
		return UserResponse{}, errs.NewObjectNotFoundError("id", query.UserID().String())
	}
	return users[0], nil
}
