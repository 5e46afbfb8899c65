package payment

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// CreditCardStrategy handles CREDIT_CARD payments
type CreditCardStrategy struct{}

// Type returns the payment type handled by this strategy
func (CreditCardStrategy) Type() domain.PaymentType {
	return domain.PaymentCreditCard
}

// Validate checks that a card number was supplied
func (CreditCardStrategy) Validate(req *Request) error {
	if req.CardNumber == "" {
		return apperr.InvalidPayment("Card number is required for credit card payments")
	}
	return nil
}

// Process stamps the card number onto the payment note
func (CreditCardStrategy) Process(p *domain.Payment, req *Request) {
	logrus.WithField("amount", p.Amount).Info("Processing credit card payment")
	p.Note = req.CardNumber // Card reference for the receipt
}

// DebitCardStrategy handles DEBIT_CARD payments
type DebitCardStrategy struct{}

// Type returns the payment type handled by this strategy
func (DebitCardStrategy) Type() domain.PaymentType {
	return domain.PaymentDebitCard
}

// Validate checks that a card number was supplied
func (DebitCardStrategy) Validate(req *Request) error {
	if req.CardNumber == "" {
		return apperr.InvalidPayment("Card number is required for debit card payments")
	}
	return nil
}

// Process stamps the card number onto the payment note
func (DebitCardStrategy) Process(p *domain.Payment, req *Request) {
	logrus.WithField("amount", p.Amount).Info("Processing debit card payment")
	p.Note = req.CardNumber // Card reference for the receipt
}
