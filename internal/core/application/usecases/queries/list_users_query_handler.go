package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := userSelect
	var args []any
	if role := query.Role(); role != nil {
		sqlQuery += "\n\tWHERE u.role = ?"
		args = append(args, role.String())
	}
	sqlQuery += "\n\tORDER BY u.created_at DESC, u.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}
