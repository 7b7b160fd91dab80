package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	"github.com/basssoft/arms/internal/config"
)

// RefreshToken is an opaque, single-use token rotated on every refresh.
type RefreshToken struct {
	Token     string       `gorm:"primaryKey;size:64"`
	AccountID snowflake.ID `gorm:"column:account_id;index;not null"`
	ExpiresAt time.Time    `gorm:"not null"`
	CreatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	tokens   *TokenService
	accounts accountdomain.Repository
	ttl      time.Duration
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Cfg      *config.Config
	Tokens   *TokenService
	Accounts accountdomain.Repository
}

func NewService(p ServiceParam) *Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("auth.service"),
		tokens:   p.Tokens,
		accounts: p.Accounts,
		ttl:      p.Cfg.RefreshTokenTTL,
	}
}

func (s *Service) Login(ctx context.Context, screenName, password string) (*TokenPair, error) {
	account, err := s.accounts.FindByScreenName(ctx, screenName)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issuePair(ctx, account)
}

// Refresh rotates the refresh token: each one is good for exactly one use.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var stored RefreshToken
	err := s.db.WithContext(ctx).
		Where("token = ?", refreshToken).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&stored).Error; err != nil {
		return nil, err
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidRefreshToken
	}

	account, err := s.accounts.FindByID(ctx, stored.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidRefreshToken
	}
	return s.issuePair(ctx, account)
}

func (s *Service) issuePair(ctx context.Context, account *accountdomain.Account) (*TokenPair, error) {
	access, err := s.tokens.Generate(account)
	if err != nil {
		return nil, err
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	row := RefreshToken{
		Token:     refresh,
		AccountID: account.ID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	s.log.Info("tokens issued", zap.String("account_id", account.ID.String()))
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
