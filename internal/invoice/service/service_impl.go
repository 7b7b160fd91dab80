package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

type Service struct {
	log  *zap.Logger
	repo invoicedomain.Repository
}

type ServiceParam struct {
	fx.In

	Log  *zap.Logger
	Repo invoicedomain.Repository
}

func New(p ServiceParam) invoicedomain.Service {
	return &Service{
		log:  p.Log.Named("invoice.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	return invoice, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]*invoicedomain.Invoice, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) List(ctx context.Context) ([]*invoicedomain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req invoicedomain.UpdateInvoiceRequest) (*invoicedomain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrInvoiceNotFound
	}

	if req.LastContacted != nil {
		invoice.LastContacted = req.LastContacted
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return invoicedomain.ErrInvoiceNotFound
	}
	return s.repo.Delete(ctx, id)
}
