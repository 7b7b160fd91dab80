package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&bookingdomain.Booking{}))
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, node *snowflake.Node, providerID, customerID snowflake.ID, completed, paid bool, start time.Time) *bookingdomain.Booking {
	t.Helper()
	b := &bookingdomain.Booking{
		ID:         node.Generate(),
		ProviderID: providerID,
		CustomerID: customerID,
		HourlyRate: decimal.RequireFromString("75.00"),
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		LocStreet:  "12 Main St",
		LocCity:    "Springfield",
		LocState:   "IL",
		LocZipCode: "62704",
		Completed:  completed,
		OverHours:  decimal.Zero,
		Paid:       paid,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestFindOutstandingFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	providerID := node.Generate()
	customerID := node.Generate()
	day := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	later := seedBooking(t, db, node, providerID, customerID, true, false, day.AddDate(0, 0, 2))
	earlier := seedBooking(t, db, node, providerID, customerID, true, false, day)
	seedBooking(t, db, node, providerID, customerID, true, true, day) // paid
	seedBooking(t, db, node, providerID, customerID, false, false, day) // not completed
	seedBooking(t, db, node, providerID, node.Generate(), true, false, day) // other customer
	seedBooking(t, db, node, node.Generate(), customerID, true, false, day) // other provider

	got, err := repo.FindOutstanding(context.Background(), providerID, customerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, earlier.ID, got[0].ID)
	require.Equal(t, later.ID, got[1].ID)
}

func TestOutstandingCustomerIDsAreDistinct(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	providerID := node.Generate()
	customerA := node.Generate()
	customerB := node.Generate()
	day := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	seedBooking(t, db, node, providerID, customerA, true, false, day)
	seedBooking(t, db, node, providerID, customerA, true, false, day.AddDate(0, 0, 1))
	seedBooking(t, db, node, providerID, customerB, true, false, day)
	seedBooking(t, db, node, providerID, node.Generate(), true, true, day) // fully paid customer
	seedBooking(t, db, node, node.Generate(), customerB, true, false, day) // other provider

	ids, err := repo.OutstandingCustomerIDs(context.Background(), providerID)
	require.NoError(t, err)
	require.ElementsMatch(t, []snowflake.ID{customerA, customerB}, ids)
}

func TestFindByIDMissingBooking(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	got, err := repo.FindByID(context.Background(), node.Generate())
	require.NoError(t, err)
	require.Nil(t, got)
}
