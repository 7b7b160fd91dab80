package migration

import (
	"errors"

	"gorm.io/gorm"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	"github.com/basssoft/arms/internal/auth"
	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

// RunMigrations brings the schema up to date. It must be run explicitly by
// the migrator entrypoint.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&accountdomain.Account{},
		&bookingdomain.Booking{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceBooking{},
		&auth.RefreshToken{},
	)
}
