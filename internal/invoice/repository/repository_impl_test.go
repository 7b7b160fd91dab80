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

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&invoicedomain.Invoice{}, &invoicedomain.InvoiceBooking{}))
	return db
}

func TestInsertPreservesBookingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	bookingIDs := []snowflake.ID{node.Generate(), node.Generate(), node.Generate()}
	invoice := &invoicedomain.Invoice{
		ID:             node.Generate(),
		ProviderID:     node.Generate(),
		CustomerID:     node.Generate(),
		TotalAmountDue: decimal.RequireFromString("390.00"),
		BookingIDs:     bookingIDs,
	}
	require.NoError(t, repo.Insert(context.Background(), invoice))

	stored, err := repo.FindByID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, bookingIDs, stored.BookingIDs)
	require.True(t, stored.TotalAmountDue.Equal(decimal.RequireFromString("390.00")))
}

func TestInsertRejectsAlreadyInvoicedBooking(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	sharedBooking := node.Generate()
	first := &invoicedomain.Invoice{
		ID:             node.Generate(),
		ProviderID:     node.Generate(),
		CustomerID:     node.Generate(),
		TotalAmountDue: decimal.RequireFromString("100.00"),
		BookingIDs:     []snowflake.ID{sharedBooking},
	}
	require.NoError(t, repo.Insert(context.Background(), first))

	second := &invoicedomain.Invoice{
		ID:             node.Generate(),
		ProviderID:     first.ProviderID,
		CustomerID:     first.CustomerID,
		TotalAmountDue: decimal.RequireFromString("100.00"),
		BookingIDs:     []snowflake.ID{sharedBooking},
	}
	err := repo.Insert(context.Background(), second)
	require.Error(t, err)

	// the failed insert must not leave a half-written invoice behind
	var count int64
	require.NoError(t, db.Model(&invoicedomain.Invoice{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateLastContacted(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	invoice := &invoicedomain.Invoice{
		ID:             node.Generate(),
		ProviderID:     node.Generate(),
		CustomerID:     node.Generate(),
		TotalAmountDue: decimal.RequireFromString("50.00"),
		BookingIDs:     []snowflake.ID{node.Generate()},
	}
	require.NoError(t, repo.Insert(context.Background(), invoice))

	contacted := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	invoice.LastContacted = &contacted
	require.NoError(t, repo.Update(context.Background(), invoice))

	stored, err := repo.FindByID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastContacted)
	require.True(t, stored.LastContacted.Equal(contacted))
}

func TestDeleteRemovesJoinRows(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	node, _ := snowflake.NewNode(1)

	invoice := &invoicedomain.Invoice{
		ID:             node.Generate(),
		ProviderID:     node.Generate(),
		CustomerID:     node.Generate(),
		TotalAmountDue: decimal.RequireFromString("50.00"),
		BookingIDs:     []snowflake.ID{node.Generate(), node.Generate()},
	}
	require.NoError(t, repo.Insert(context.Background(), invoice))
	require.NoError(t, repo.Delete(context.Background(), invoice.ID))

	stored, err := repo.FindByID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.Nil(t, stored)

	var joinCount int64
	require.NoError(t, db.Model(&invoicedomain.InvoiceBooking{}).Count(&joinCount).Error)
	require.Zero(t, joinCount)
}
