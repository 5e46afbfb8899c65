package domain

import (
	"github.com/shopspring/decimal" // Exact decimal money values
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

// Order status values. Transitions: PLACED -> APPROVED -> DELIVERED,
// PLACED/APPROVED -> CANCELLED. There is no exit from CANCELLED or DELIVERED.
const (
	OrderPlaced    OrderStatus = "PLACED"    // Created at checkout, awaiting payment
	OrderApproved  OrderStatus = "APPROVED"  // Payment accepted
	OrderCancelled OrderStatus = "CANCELLED" // Cancelled or soft-deleted
	OrderDelivered OrderStatus = "DELIVERED" // Delivery confirmed
)

// Order Model
type Order struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`                                  // Primary key
	OrderNumber        string           `gorm:"unique;not null" json:"orderNumber"`                    // Generated order number
	UserID             uint             `gorm:"not null;index" json:"userId"`                          // Foreign key to the buyer
	User               *User            `json:"user,omitempty"`                                        // Buyer relation
	Status             OrderStatus      `gorm:"type:varchar(16);default:PLACED" json:"status"`         // Lifecycle state
	TotalAmount        decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"totalAmount"`        // Total after discount
	DiscountID         *uint            `json:"discountId,omitempty"`                                  // Foreign key to applied Discount
	Discount           *Discount        `json:"discount,omitempty"`                                    // Discount relation
	DiscountCode       string           `json:"discountCode,omitempty"`                                // Snapshot of the code at checkout
	DiscountPercentage *decimal.Decimal `gorm:"type:decimal(5,2)" json:"discountPercentage,omitempty"` // Snapshot of the percentage at checkout
	DiscountAmount     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discountAmount,omitempty"`    // Snapshot of the amount taken off
	Items              []OrderItem      `gorm:"constraint:OnDelete:CASCADE" json:"items"`              // Immutable snapshot of the cart
	ShippingAddressID  *uint            `json:"shippingAddressId,omitempty"`                           // Foreign key to the shipping Address
	BillingAddressID   *uint            `json:"billingAddressId,omitempty"`                            // Foreign key to the billing Address
	Delivery           *Delivery        `json:"delivery,omitempty"`                                    // Delivery relation, created at payment
	CreatedAt          int64            `gorm:"autoCreateTime:milli" json:"createdAt"`                 // Timestamp of creation in milliseconds
	UpdatedAt          int64            `gorm:"autoUpdateTime:milli" json:"updatedAt"`                 // Timestamp of last update in milliseconds
}

// OrderItem Model
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                     // Primary key
	OrderID   uint            `gorm:"not null;index" json:"orderId"`            // Foreign key to Order
	PetID     uint            `gorm:"not null;index" json:"petId"`              // Foreign key to Pet
	Pet       *Pet            `json:"pet,omitempty"`                            // Pet relation
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Price captured at checkout
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"createdAt"`    // Timestamp of creation in milliseconds
}
