package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Account is a platform user. Providers offer time-based services, customers
// book them; the Provider flag is the only role distinction.
type Account struct {
	ID          snowflake.ID `gorm:"primaryKey;column:account_id" json:"account_id"`
	ScreenName  string       `gorm:"column:screen_name;size:24;uniqueIndex;not null" json:"screen_name"`
	Password    string       `gorm:"size:60;not null" json:"-"`
	Provider    bool         `gorm:"not null" json:"provider"`
	FirstName   string       `gorm:"column:first_name;size:24;not null" json:"first_name"`
	LastName    string       `gorm:"column:last_name;size:24;not null" json:"last_name"`
	Email       string       `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PhoneNumber string       `gorm:"column:phone_number;size:20;not null" json:"phone_number"`
	Street      string       `gorm:"size:50;not null" json:"street"`
	City        string       `gorm:"size:24;not null" json:"city"`
	State       string       `gorm:"size:2;not null" json:"state"`
	ZipCode     string       `gorm:"column:zip_code;size:10;not null" json:"zip_code"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
