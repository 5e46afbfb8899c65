package service

import (
	"testing"
	"time"

	"petstore/internal/apperr"
	"petstore/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedDiscount creates a discount with an hour-wide validity window around now
func seedDiscount(t *testing.T, conn *gorm.DB, code string, pct int64, active bool) *domain.Discount {
	t.Helper()
	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	discount := domain.Discount{
		Code:       code,
		Percentage: decimal.NewFromInt(pct),
		ValidFrom:  &from,
		ValidTo:    &to,
		Active:     active,
	}
	require.NoError(t, conn.Create(&discount).Error)
	return &discount
}

func TestValidateDiscount(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	seedDiscount(t, conn, "SAVE10", 10, true)

	found, err := discounts.Validate("SAVE10")
	require.NoError(t, err)
	assert.True(t, found.Percentage.Equal(decimal.NewFromInt(10)))

	// Lookup is case-insensitive on the code
	_, err = discounts.Validate("save10")
	require.NoError(t, err)
}

func TestValidateDiscountFailuresAreIndistinguishable(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	seedDiscount(t, conn, "INACTIVE", 10, false)
	expired := seedDiscount(t, conn, "EXPIRED", 10, true)
	past := time.Now().Add(-time.Minute)
	require.NoError(t, conn.Model(expired).Update("valid_to", &past).Error)

	// Unknown, inactive and expired codes all fail with the same error
	for _, code := range []string{"NOSUCHCODE", "INACTIVE", "EXPIRED"} {
		_, err := discounts.Validate(code)
		e := apperr.From(err)
		require.NotNil(t, e, "code %s", code)
		assert.Equal(t, apperr.CodeInvalidDiscount, e.Code, "code %s", code)
	}
}

func TestDiscountOpenEndedWindow(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	discount := domain.Discount{
		Code:       "FOREVER",
		Percentage: decimal.NewFromInt(5),
		Active:     true,
	}
	require.NoError(t, conn.Create(&discount).Error)

	// Nil window bounds mean the code never expires
	_, err := discounts.Validate("FOREVER")
	require.NoError(t, err)
}

func TestCreateDiscountRejectsDuplicateCode(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	seedDiscount(t, conn, "SAVE10", 10, true)

	err := discounts.Create(&domain.Discount{Code: "save10", Percentage: decimal.NewFromInt(15)})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeDiscountExists, e.Code)
}

func TestCreatePreservesInactiveFlag(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)

	require.NoError(t, discounts.Create(&domain.Discount{
		Code:       "OFF",
		Percentage: decimal.NewFromInt(10),
		Active:     false,
	}))

	// The stored row is inactive and the code does not validate
	var stored domain.Discount
	require.NoError(t, conn.Where("code = ?", "OFF").First(&stored).Error)
	assert.False(t, stored.Active)
	_, err := discounts.Validate("OFF")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInvalidDiscount, e.Code)
}

func TestActiveDiscountsFilterWindow(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	seedDiscount(t, conn, "LIVE", 10, true)
	seedDiscount(t, conn, "OFF", 10, false)
	future := seedDiscount(t, conn, "SOON", 10, true)
	later := time.Now().Add(time.Hour)
	require.NoError(t, conn.Model(future).Update("valid_from", &later).Error)

	active, err := discounts.Active()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "LIVE", active[0].Code)
}

func TestDeleteDiscountBlockedByOrders(t *testing.T) {
	conn := openTestDB(t)
	discounts := NewDiscountService(conn)
	buyer := seedUser(t, conn, "buyer@example.com", domain.RoleUser)
	discount := seedDiscount(t, conn, "SAVE10", 10, true)
	order := domain.Order{
		OrderNumber: "ORD-TEST",
		UserID:      buyer.ID,
		Status:      domain.OrderPlaced,
		TotalAmount: decimal.NewFromInt(90),
		DiscountID:  &discount.ID,
	}
	require.NoError(t, conn.Create(&order).Error)

	err := discounts.Delete(discount.ID)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeDiscountInUse, e.Code)

	// Unreferenced discounts delete fine
	free := seedDiscount(t, conn, "UNUSED", 5, true)
	require.NoError(t, discounts.Delete(free.ID))
}
