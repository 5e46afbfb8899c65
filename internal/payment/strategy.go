// Package payment implements the payment-method strategies. Each strategy
// validates the method-specific request fields and stamps a note onto the
// Payment record; a factory keyed on the payment type selects among them.
package payment

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models
)

// Request carries the payment details submitted for an order
type Request struct {
	PaymentType       domain.PaymentType `json:"paymentType" binding:"required"`       // Payment method selector
	ShippingAddressID uint               `json:"shippingAddressId" binding:"required"` // Address to ship to
	BillingAddressID  *uint              `json:"billingAddressId"`                     // Billing address, defaults to shipping
	CardNumber        string             `json:"cardNumber"`                           // Required for card payments
	PaypalID          string             `json:"paypalId"`                             // Required for PayPal payments
	WalletType        domain.WalletType  `json:"walletType"`                           // Required for e-wallet payments
	WalletID          string             `json:"walletId"`                             // Required for e-wallet payments
}

// Strategy is the contract every payment method implements
type Strategy interface {
	Type() domain.PaymentType                // Payment type this strategy handles
	Validate(req *Request) error             // Checks method-specific fields
	Process(p *domain.Payment, req *Request) // Annotates the payment record
}

// Factory resolves strategies by payment type
type Factory struct {
	strategies map[domain.PaymentType]Strategy // Registered strategies
}

// NewFactory registers the given strategies
func NewFactory(strategies ...Strategy) *Factory {
	m := make(map[domain.PaymentType]Strategy, len(strategies))
	for _, s := range strategies {
		m[s.Type()] = s // Key each strategy by its payment type
	}
	return &Factory{strategies: m}
}

// NewDefaultFactory registers every supported payment method
func NewDefaultFactory() *Factory {
	return NewFactory(
		CreditCardStrategy{},                        // Credit card
		DebitCardStrategy{},                         // Debit card
		PayPalStrategy{},                            // PayPal
		&EWalletStrategy{NewDefaultWalletFactory()}, // E-wallet providers
	)
}

// Strategy returns the strategy for the given payment type
func (f *Factory) Strategy(t domain.PaymentType) (Strategy, error) {
	s, ok := f.strategies[t]
	if !ok {
		return nil, apperr.UnsupportedPaymentType(string(t)) // Unknown payment type
	}
	return s, nil
}
