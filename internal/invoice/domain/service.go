package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type UpdateInvoiceRequest struct {
	LastContacted *time.Time `json:"last_contacted,omitempty"`
}

type Repository interface {
	// Insert persists the invoice together with its booking join rows in one
	// transaction. A booking already referenced by another invoice makes the
	// whole insert fail with ErrBookingAlreadyInvoiced.
	Insert(ctx context.Context, invoice *Invoice) error
	FindByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id snowflake.ID) error
}

type Service interface {
	GetByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateInvoiceRequest) (*Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvoiceNotFound        = errors.New("invoice_not_found")
	ErrBookingAlreadyInvoiced = errors.New("booking_already_invoiced")
)
