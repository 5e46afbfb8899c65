package domain

// DeliveryStatus is the shipment state of an order's delivery
type DeliveryStatus string

// Delivery status values
const (
	DeliveryPending   DeliveryStatus = "PENDING"   // Created at payment, not yet shipped
	DeliveryShipped   DeliveryStatus = "SHIPPED"   // Handed to the carrier
	DeliveryDelivered DeliveryStatus = "DELIVERED" // Received by the buyer
)

// Delivery Model
type Delivery struct {
	ID          uint           `gorm:"primaryKey" json:"id"`                          // Primary key
	OrderID     uint           `gorm:"uniqueIndex;not null" json:"orderId"`           // Foreign key to Order, one delivery per order
	Name        string         `json:"name"`                                          // Recipient name snapshot from the shipping address
	Phone       string         `json:"phone"`                                         // Recipient phone snapshot
	Address     string         `json:"address"`                                       // Full shipping address snapshot
	Status      DeliveryStatus `gorm:"type:varchar(16);default:PENDING" json:"status"` // Shipment state
	CreatedAt   int64          `gorm:"autoCreateTime:milli" json:"createdAt"`         // Timestamp of creation in milliseconds
	ShippedAt   *int64         `json:"shippedAt,omitempty"`                           // Timestamp of shipment in milliseconds
	DeliveredAt *int64         `json:"deliveredAt,omitempty"`                         // Timestamp of delivery in milliseconds
}
