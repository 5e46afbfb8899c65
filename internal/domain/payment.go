package domain

import (
	"github.com/shopspring/decimal" // Exact decimal money values
)

// PaymentType identifies the payment method used for an order
type PaymentType string

// Payment type values
const (
	PaymentCreditCard PaymentType = "CREDIT_CARD" // Credit card payment
	PaymentDebitCard  PaymentType = "DEBIT_CARD"  // Debit card payment
	PaymentEWallet    PaymentType = "E_WALLET"    // E-wallet payment, see WalletType
	PaymentPayPal     PaymentType = "PAYPAL"      // PayPal payment
)

// WalletType identifies the e-wallet provider for E_WALLET payments
type WalletType string

// Supported e-wallet providers
const (
	WalletBoostPay  WalletType = "BOOSTPAY"  // BoostPay wallet
	WalletGrabPay   WalletType = "GRABPAY"   // GrabPay wallet
	WalletTouchNGo  WalletType = "TOUCHNGO"  // Touch 'n Go wallet
)

// PaymentStatus is the outcome state of a payment
type PaymentStatus string

// Payment status values
const (
	PaymentPending PaymentStatus = "PENDING" // Created, not processed
	PaymentSuccess PaymentStatus = "SUCCESS" // Processed successfully
	PaymentFailed  PaymentStatus = "FAILED"  // Processing failed
)

// Payment Model
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                          // Primary key
	OrderID   uint            `gorm:"not null;index" json:"orderId"`                 // Foreign key to Order
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`     // Amount charged
	Type      PaymentType     `gorm:"type:varchar(16);not null" json:"type"`         // Payment method
	Status    PaymentStatus   `gorm:"type:varchar(16);default:PENDING" json:"status"` // Outcome state
	Note      string          `json:"note"`                                          // Method-specific note stamped by the strategy
	PaidAt    int64           `json:"paidAt"`                                        // Timestamp of payment in milliseconds
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"createdAt"`         // Timestamp of creation in milliseconds
}
