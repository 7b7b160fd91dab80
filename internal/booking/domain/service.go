package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ProviderID snowflake.ID    `json:"provider_id" binding:"required"`
	CustomerID snowflake.ID    `json:"customer_id" binding:"required"`
	HourlyRate decimal.Decimal `json:"hourly_rate" binding:"required"`
	StartTime  time.Time       `json:"start_time" binding:"required"`
	EndTime    time.Time       `json:"end_time" binding:"required"`
	LocStreet  string          `json:"loc_street" binding:"required,max=50"`
	LocCity    string          `json:"loc_city" binding:"required,max=24"`
	LocState   string          `json:"loc_state" binding:"required,max=2"`
	LocZipCode string          `json:"loc_zip_code" binding:"required,max=10"`
}

type UpdateBookingRequest struct {
	StartTime *time.Time       `json:"start_time,omitempty"`
	EndTime   *time.Time       `json:"end_time,omitempty"`
	Completed *bool            `json:"completed,omitempty"`
	OverHours *decimal.Decimal `json:"over_hours,omitempty"`
	Paid      *bool            `json:"paid,omitempty"`
}

type Repository interface {
	Insert(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id snowflake.ID) (*Booking, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id snowflake.ID) error

	// FindOutstanding returns every completed, unpaid booking between the
	// exact provider/customer pair, oldest first.
	FindOutstanding(ctx context.Context, providerID, customerID snowflake.ID) ([]*Booking, error)

	// OutstandingCustomerIDs returns the distinct customers holding at least
	// one completed, unpaid booking with the provider. No ordering guarantee.
	OutstandingCustomerIDs(ctx context.Context, providerID snowflake.ID) ([]snowflake.ID, error)
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Booking, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*Booking, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateBookingRequest) (*Booking, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrInvalidBooking  = errors.New("invalid_booking")
	ErrInvalidTimeSpan = errors.New("invalid_time_span")
)
