package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"

	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  bookingdomain.Repository
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  bookingdomain.Repository
}

func New(p ServiceParam) bookingdomain.Service {
	return &Service{
		log:   p.Log.Named("booking.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req bookingdomain.CreateBookingRequest) (*bookingdomain.Booking, error) {
	if req.ProviderID == 0 || req.CustomerID == 0 {
		return nil, bookingdomain.ErrInvalidBooking
	}
	if req.HourlyRate.IsNegative() {
		return nil, bookingdomain.ErrInvalidBooking
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, bookingdomain.ErrInvalidTimeSpan
	}

	booking := &bookingdomain.Booking{
		ID:         s.genID.Generate(),
		ProviderID: req.ProviderID,
		CustomerID: req.CustomerID,
		HourlyRate: req.HourlyRate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		LocStreet:  strings.TrimSpace(req.LocStreet),
		LocCity:    strings.TrimSpace(req.LocCity),
		LocState:   strings.ToUpper(strings.TrimSpace(req.LocState)),
		LocZipCode: strings.TrimSpace(req.LocZipCode),
		OverHours:  decimal.Zero,
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("provider_id", booking.ProviderID.String()),
		zap.String("customer_id", booking.CustomerID.String()),
	)
	return booking, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*bookingdomain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, bookingdomain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*bookingdomain.Booking, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req bookingdomain.UpdateBookingRequest) (*bookingdomain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, bookingdomain.ErrBookingNotFound
	}

	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if !booking.EndTime.After(booking.StartTime) {
		return nil, bookingdomain.ErrInvalidTimeSpan
	}
	if req.Completed != nil {
		booking.Completed = *req.Completed
	}
	if req.OverHours != nil {
		booking.OverHours = *req.OverHours
	}
	if req.Paid != nil {
		booking.Paid = *req.Paid
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return bookingdomain.ErrBookingNotFound
	}
	return s.repo.Delete(ctx, id)
}
