package auth

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	"github.com/basssoft/arms/internal/config"
)

var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidToken        = errors.New("invalid_token")
	ErrInvalidRefreshToken = errors.New("invalid_refresh_token")
)

// Claims is the decoded access-token payload.
type Claims struct {
	AccountID  snowflake.ID
	ScreenName string
	Provider   bool
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
	}
}

func (t *TokenService) Generate(account *accountdomain.Account) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":        account.ScreenName,
		"account_id": account.ID.String(),
		"provider":   account.Provider,
		"iat":        now.Unix(),
		"exp":        now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	screenName, _ := mapClaims["sub"].(string)
	rawID, _ := mapClaims["account_id"].(string)
	accountID, err := snowflake.ParseString(rawID)
	if err != nil || screenName == "" {
		return nil, ErrInvalidToken
	}
	provider, _ := mapClaims["provider"].(bool)

	return &Claims{
		AccountID:  accountID,
		ScreenName: screenName,
		Provider:   provider,
	}, nil
}
