package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) accountdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, account *accountdomain.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*accountdomain.Account, error) {
	var account accountdomain.Account
	err := r.db.WithContext(ctx).
		Where("account_id = ?", id).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) FindByScreenName(ctx context.Context, screenName string) (*accountdomain.Account, error) {
	var account accountdomain.Account
	err := r.db.WithContext(ctx).
		Where("screen_name = ?", screenName).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*accountdomain.Account, error) {
	var account accountdomain.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) List(ctx context.Context) ([]*accountdomain.Account, error) {
	var accounts []*accountdomain.Account
	err := r.db.WithContext(ctx).
		Order("screen_name").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) Update(ctx context.Context, account *accountdomain.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&accountdomain.Account{}).Error
}
