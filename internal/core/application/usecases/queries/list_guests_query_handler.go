package queries

import (
	"context"
	"database/sql"
	"strings"

	"hotelpos/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListGuestsQueryHandler struct {
	db *gorm.DB
}

func NewListGuestsQueryHandler(db *gorm.DB) ListGuestsQueryHandler {
	return ListGuestsQueryHandler{db: db}
}

func (h ListGuestsQueryHandler) Handle(ctx context.Context, query ListGuestsQuery) ([]GuestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanManageGuests(), staff.CapManageGuests); err != nil {
		return nil, err
	}

	stmt := `
		SELECT id, name, room_number, check_in, check_out, email, phone
		FROM guests`
	var args []any
	if search := query.Search(); search != "" {
		stmt += " WHERE name ILIKE ? OR room_number ILIKE ?"
		pattern := "%" + escapeLike(search) + "%"
		args = append(args, pattern, pattern)
	}
	stmt += " ORDER BY check_in DESC, name"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]GuestResponse, 0)
	for rows.Next() {
		var (
			g            GuestResponse
			id           uuid.UUID
			email, phone sql.NullString
		)
		if err = rows.Scan(&id, &g.Name, &g.RoomNumber, &g.CheckIn, &g.CheckOut, &email, &phone); err != nil {
			return nil, err
		}

		if g.ID, err = uuidFromDB(id); err != nil {
			return nil, err
		}
		g.Email = email.String
		g.Phone = phone.String
		guests = append(guests, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return guests, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
