package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) bookingdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, booking *bookingdomain.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*bookingdomain.Booking, error) {
	var booking bookingdomain.Booking
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*bookingdomain.Booking, error) {
	var bookings []*bookingdomain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_time").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) Update(ctx context.Context, booking *bookingdomain.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&bookingdomain.Booking{}).Error
}

func (r *repository) FindOutstanding(ctx context.Context, providerID, customerID snowflake.ID) ([]*bookingdomain.Booking, error) {
	var bookings []*bookingdomain.Booking
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND customer_id = ? AND completed = ? AND paid = ?",
			providerID, customerID, true, false).
		Order("start_time").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) OutstandingCustomerIDs(ctx context.Context, providerID snowflake.ID) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := r.db.WithContext(ctx).
		Model(&bookingdomain.Booking{}).
		Distinct("customer_id").
		Where("provider_id = ? AND completed = ? AND paid = ?", providerID, true, false).
		Pluck("customer_id", &ids).Error
	return ids, err
}
