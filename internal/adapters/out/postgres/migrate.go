package postgres

import (
	"hotelpos/internal/adapters/out/postgres/adminrepo"
	"hotelpos/internal/adapters/out/postgres/guestrepo"
	"hotelpos/internal/adapters/out/postgres/menurepo"
	"hotelpos/internal/adapters/out/postgres/orderrepo"
	"hotelpos/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the POS writes, referenced tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminrepo.AdminUserDTO{},
		&guestrepo.GuestDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&paymentrepo.PaymentDTO{},
	)
}
