package queries

import (
	"context"
	"database/sql"

	"hotelpos/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAdminUsersQueryHandler struct {
	db *gorm.DB
}

func NewListAdminUsersQueryHandler(db *gorm.DB) ListAdminUsersQueryHandler {
	return ListAdminUsersQueryHandler{db: db}
}

func (h ListAdminUsersQueryHandler) Handle(ctx context.Context, query ListAdminUsersQuery) ([]AdminUserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanManageStaff(), staff.CapManageStaff); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, role, is_active, created_at, last_login
		FROM admin_users
		ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]AdminUserResponse, 0)
	for rows.Next() {
		var (
			u         AdminUserResponse
			id        uuid.UUID
			phone     sql.NullString
			role      string
			lastLogin sql.NullTime
		)
		if err = rows.Scan(&id, &u.Name, &u.Email, &phone, &role, &u.IsActive, &u.CreatedAt, &lastLogin); err != nil {
			return nil, err
		}

		if u.ID, err = uuidFromDB(id); err != nil {
			return nil, err
		}
		if u.Role, err = staff.ParseRole(role); err != nil {
			return nil, err
		}
		u.Phone = phone.String
		if lastLogin.Valid {
			at := lastLogin.Time
			u.LastLogin = &at
		}

		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
