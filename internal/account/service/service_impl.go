package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  accountdomain.Repository
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  accountdomain.Repository
}

func New(p ServiceParam) accountdomain.Service {
	return &Service{
		log:   p.Log.Named("account.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req accountdomain.CreateAccountRequest) (*accountdomain.Account, error) {
	screenName := strings.TrimSpace(req.ScreenName)
	if screenName == "" {
		return nil, accountdomain.ErrInvalidAccount
	}

	existing, err := s.repo.FindByScreenName(ctx, screenName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, accountdomain.ErrScreenNameTaken
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, accountdomain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &accountdomain.Account{
		ID:          s.genID.Generate(),
		ScreenName:  screenName,
		Password:    string(hash),
		Provider:    req.Provider,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Street:      strings.TrimSpace(req.Street),
		City:        strings.TrimSpace(req.City),
		State:       strings.ToUpper(strings.TrimSpace(req.State)),
		ZipCode:     strings.TrimSpace(req.ZipCode),
	}

	if err := s.repo.Insert(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("account created",
		zap.String("account_id", account.ID.String()),
		zap.Bool("provider", account.Provider),
	)
	return account, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (*accountdomain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, accountdomain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetByScreenName(ctx context.Context, screenName string) (*accountdomain.Account, error) {
	account, err := s.repo.FindByScreenName(ctx, strings.TrimSpace(screenName))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, accountdomain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) List(ctx context.Context) ([]*accountdomain.Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req accountdomain.UpdateAccountRequest) (*accountdomain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, accountdomain.ErrAccountNotFound
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		account.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		account.LastName = v
	}
	if v := strings.ToLower(strings.TrimSpace(req.Email)); v != "" && v != account.Email {
		existing, err := s.repo.FindByEmail(ctx, v)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, accountdomain.ErrEmailTaken
		}
		account.Email = v
	}
	if v := strings.TrimSpace(req.PhoneNumber); v != "" {
		account.PhoneNumber = v
	}
	if v := strings.TrimSpace(req.Street); v != "" {
		account.Street = v
	}
	if v := strings.TrimSpace(req.City); v != "" {
		account.City = v
	}
	if v := strings.TrimSpace(req.State); v != "" {
		account.State = strings.ToUpper(v)
	}
	if v := strings.TrimSpace(req.ZipCode); v != "" {
		account.ZipCode = v
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return accountdomain.ErrAccountNotFound
	}
	return s.repo.Delete(ctx, id)
}
