package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Booking is one time-based service engagement between a provider and a
// customer. Only bookings with Completed true and Paid false are eligible
// for invoicing; both flags are flipped outside the invoice engine.
type Booking struct {
	ID         snowflake.ID `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	ProviderID snowflake.ID `gorm:"column:provider_id;index;not null" json:"provider_id"`
	CustomerID snowflake.ID `gorm:"column:customer_id;index;not null" json:"customer_id"`

	HourlyRate decimal.Decimal `gorm:"column:hourly_rate;type:decimal(10,2);not null" json:"hourly_rate"`
	StartTime  time.Time       `gorm:"column:start_time;not null" json:"start_time"`
	EndTime    time.Time       `gorm:"column:end_time;not null" json:"end_time"`

	LocStreet  string `gorm:"column:loc_street;size:50;not null" json:"loc_street"`
	LocCity    string `gorm:"column:loc_city;size:24;not null" json:"loc_city"`
	LocState   string `gorm:"column:loc_state;size:2;not null" json:"loc_state"`
	LocZipCode string `gorm:"column:loc_zip_code;size:10;not null" json:"loc_zip_code"`

	Completed bool `gorm:"not null" json:"completed"`

	// Time used over the scheduled span (or under, when negative), in hours.
	// 1.5 is one hour thirty minutes over, -0.5 is half an hour under.
	OverHours decimal.Decimal `gorm:"column:over_hours;type:decimal(7,3);not null" json:"over_hours"`

	Paid bool `gorm:"not null" json:"paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
