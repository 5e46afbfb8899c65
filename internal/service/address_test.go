package service

import (
	"testing"

	"petstore/internal/apperr"
	"petstore/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddressFirstBecomesDefault(t *testing.T) {
	conn := openTestDB(t)
	addresses := NewAddressService(conn)
	user := seedUser(t, conn, "alice@example.com", domain.RoleUser)

	first := domain.Address{FullName: "Alice Smith", Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"}
	require.NoError(t, addresses.Create(user.ID, &first))
	assert.True(t, first.IsDefault)

	second := domain.Address{FullName: "Alice Smith", Street: "2 Oak Ave", City: "Springfield", PostalCode: "12345", Country: "US"}
	require.NoError(t, addresses.Create(user.ID, &second))
	assert.False(t, second.IsDefault)

	err := addresses.Create(999, &domain.Address{FullName: "Ghost"})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeUserNotFound, e.Code)
}

func TestDeleteAddressBlockedByOrders(t *testing.T) {
	conn := openTestDB(t)
	addresses := NewAddressService(conn)
	user := seedUser(t, conn, "alice@example.com", domain.RoleUser)
	address := seedAddress(t, conn, user.ID)
	order := domain.Order{
		OrderNumber:       "ORD-TEST",
		UserID:            user.ID,
		Status:            domain.OrderApproved,
		TotalAmount:       decimal.NewFromInt(100),
		ShippingAddressID: &address.ID,
		BillingAddressID:  &address.ID,
	}
	require.NoError(t, conn.Create(&order).Error)

	err := addresses.Delete(address.ID)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeAddressInUse, e.Code)

	free := seedAddress(t, conn, user.ID)
	require.NoError(t, addresses.Delete(free.ID))
}

func TestFullAddressFormat(t *testing.T) {
	address := domain.Address{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "12345",
		Country:    "US",
	}
	assert.Equal(t, "1 Main St, Springfield, IL, 12345, US", address.FullAddress())

	// Empty parts drop out instead of leaving stray commas
	address.State = ""
	assert.Equal(t, "1 Main St, Springfield, 12345, US", address.FullAddress())
}
