package auth

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	accountrepo "github.com/basssoft/arms/internal/account/repository"
	"github.com/basssoft/arms/internal/config"
)

func newTestAuth(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accountdomain.Account{}, &RefreshToken{}))

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
	svc := &Service{
		db:       db,
		log:      zap.NewNop(),
		tokens:   NewTokenService(cfg),
		accounts: accountrepo.New(db),
		ttl:      cfg.RefreshTokenTTL,
	}
	return svc, db
}

func seedAccount(t *testing.T, db *gorm.DB, password string) *accountdomain.Account {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	account := &accountdomain.Account{
		ID:         node.Generate(),
		ScreenName: "provider_one",
		Password:   string(hash),
		Provider:   true,
		Email:      "provider_one@example.com",
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, db := newTestAuth(t)
	account := seedAccount(t, db, "hunter2secret")

	pair, err := svc.Login(context.Background(), "provider_one", "hunter2secret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.tokens.Parse(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, account.ID, claims.AccountID)
	require.Equal(t, "provider_one", claims.ScreenName)
	require.True(t, claims.Provider)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, db := newTestAuth(t)
	seedAccount(t, db, "hunter2secret")

	_, err := svc.Login(context.Background(), "provider_one", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownAccount(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), "nobody", "hunter2secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, db := newTestAuth(t)
	seedAccount(t, db, "hunter2secret")

	pair, err := svc.Login(context.Background(), "provider_one", "hunter2secret")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// Each refresh token is single use.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	var count int64
	require.NoError(t, db.Model(&RefreshToken{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	svc, db := newTestAuth(t)
	account := seedAccount(t, db, "hunter2secret")

	expired := RefreshToken{
		Token:     "expired-token",
		AccountID: account.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := svc.Refresh(context.Background(), "expired-token")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	svc, db := newTestAuth(t)
	seedAccount(t, db, "hunter2secret")

	pair, err := svc.Login(context.Background(), "provider_one", "hunter2secret")
	require.NoError(t, err)

	other := NewTokenService(&config.Config{JWTSecret: "other-secret", AccessTokenTTL: time.Minute})
	_, err = other.Parse(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}
