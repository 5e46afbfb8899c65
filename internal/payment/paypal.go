package payment

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// PayPalStrategy handles PAYPAL payments
type PayPalStrategy struct{}

// Type returns the payment type handled by this strategy
func (PayPalStrategy) Type() domain.PaymentType {
	return domain.PaymentPayPal
}

// Validate checks that a PayPal ID was supplied
func (PayPalStrategy) Validate(req *Request) error {
	if req.PaypalID == "" {
		return apperr.InvalidPayment("PayPal ID is required")
	}
	return nil
}

// Process stamps the PayPal ID onto the payment note
func (PayPalStrategy) Process(p *domain.Payment, req *Request) {
	logrus.WithField("amount", p.Amount).Info("Processing PayPal payment")
	p.Note = "PayPal ID: " + req.PaypalID
}
