package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateAccountRequest struct {
	ScreenName  string `json:"screen_name" binding:"required,min=8,max=20"`
	Password    string `json:"password" binding:"required,min=6,max=60"`
	Provider    bool   `json:"provider"`
	FirstName   string `json:"first_name" binding:"required,max=24"`
	LastName    string `json:"last_name" binding:"required,max=24"`
	Email       string `json:"email" binding:"required,email,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Street      string `json:"street" binding:"required,max=50"`
	City        string `json:"city" binding:"required,max=24"`
	State       string `json:"state" binding:"required,max=2"`
	ZipCode     string `json:"zip_code" binding:"required,max=10"`
}

type UpdateAccountRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
}

type Repository interface {
	Insert(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id snowflake.ID) (*Account, error)
	FindByScreenName(ctx context.Context, screenName string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id snowflake.ID) error
}

type Service interface {
	Create(ctx context.Context, req CreateAccountRequest) (*Account, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Account, error)
	GetByScreenName(ctx context.Context, screenName string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateAccountRequest) (*Account, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrAccountNotFound = errors.New("account_not_found")
	ErrScreenNameTaken = errors.New("screen_name_taken")
	ErrEmailTaken      = errors.New("email_taken")
	ErrInvalidAccount  = errors.New("invalid_account")
)
