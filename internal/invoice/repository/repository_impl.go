package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) invoicedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, invoice *invoicedomain.Invoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		for i, bookingID := range invoice.BookingIDs {
			row := invoicedomain.InvoiceBooking{
				InvoiceID: invoice.ID,
				BookingID: bookingID,
				Position:  i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invoicedomain.ErrBookingAlreadyInvoiced
	}
	return err
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var invoice invoicedomain.Invoice
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadBookingIDs(ctx, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*invoicedomain.Invoice, error) {
	var invoices []*invoicedomain.Invoice
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	for _, invoice := range invoices {
		if err := r.loadBookingIDs(ctx, invoice); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (r *repository) List(ctx context.Context) ([]*invoicedomain.Invoice, error) {
	var invoices []*invoicedomain.Invoice
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	for _, invoice := range invoices {
		if err := r.loadBookingIDs(ctx, invoice); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (r *repository) Update(ctx context.Context, invoice *invoicedomain.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).
			Delete(&invoicedomain.InvoiceBooking{}).Error; err != nil {
			return err
		}
		return tx.Where("invoice_id = ?", id).
			Delete(&invoicedomain.Invoice{}).Error
	})
}

func (r *repository) loadBookingIDs(ctx context.Context, invoice *invoicedomain.Invoice) error {
	var ids []snowflake.ID
	err := r.db.WithContext(ctx).
		Model(&invoicedomain.InvoiceBooking{}).
		Where("invoice_id = ?", invoice.ID).
		Order("position").
		Pluck("booking_id", &ids).Error
	if err != nil {
		return err
	}
	invoice.BookingIDs = ids
	return nil
}
