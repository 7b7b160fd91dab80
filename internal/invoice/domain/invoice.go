package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Invoice consolidates every completed, unpaid booking between one provider
// and one customer at the moment of generation. An invoice is never created
// without at least one booking.
type Invoice struct {
	ID         snowflake.ID `gorm:"primaryKey;column:invoice_id" json:"invoice_id"`
	ProviderID snowflake.ID `gorm:"column:provider_id;index;not null" json:"provider_id"`
	CustomerID snowflake.ID `gorm:"column:customer_id;index;not null" json:"customer_id"`

	TotalAmountDue decimal.Decimal `gorm:"column:total_amount_due;type:decimal(20,2);not null" json:"total_amount_due"`

	// When the customer was last asked to pay. Nil until a collection
	// attempt is recorded.
	LastContacted *time.Time `gorm:"column:last_contacted" json:"last_contacted,omitempty"`

	// Contributing bookings in insertion order. Persisted through
	// invoice_bookings join rows, not a column.
	BookingIDs []snowflake.ID `gorm:"-" json:"booking_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceBooking links an invoice to one of its bookings. Position preserves
// insertion order for display. The unique index on booking_id is what stops
// two concurrent generation runs from invoicing the same booking twice; the
// orchestrator has no transactional view spanning customers, so the schema
// carries that guarantee.
type InvoiceBooking struct {
	InvoiceID snowflake.ID `gorm:"column:invoice_id;primaryKey"`
	BookingID snowflake.ID `gorm:"column:booking_id;primaryKey;uniqueIndex"`
	Position  int          `gorm:"not null"`
}

func (InvoiceBooking) TableName() string {
	return "invoice_bookings"
}
