package payment

import (
	"testing"

	"petstore/internal/apperr"
	"petstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryResolvesEveryPaymentType(t *testing.T) {
	f := NewDefaultFactory()
	for _, pt := range []domain.PaymentType{
		domain.PaymentCreditCard,
		domain.PaymentDebitCard,
		domain.PaymentEWallet,
		domain.PaymentPayPal,
	} {
		s, err := f.Strategy(pt)
		require.NoError(t, err, "type %s", pt)
		assert.Equal(t, pt, s.Type())
	}

	_, err := f.Strategy("BARTER")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeUnsupportedPayment, e.Code)
}

func TestCardStrategies(t *testing.T) {
	for _, s := range []Strategy{CreditCardStrategy{}, DebitCardStrategy{}} {
		err := s.Validate(&Request{PaymentType: s.Type()})
		e := apperr.From(err)
		require.NotNil(t, e, "type %s", s.Type())
		assert.Equal(t, apperr.CodeInvalidPayment, e.Code)

		req := &Request{PaymentType: s.Type(), CardNumber: "4111111111111111"}
		require.NoError(t, s.Validate(req))
		var p domain.Payment
		s.Process(&p, req)
		assert.Equal(t, "4111111111111111", p.Note)
	}
}

func TestPayPalStrategy(t *testing.T) {
	s := PayPalStrategy{}
	err := s.Validate(&Request{PaymentType: domain.PaymentPayPal})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInvalidPayment, e.Code)

	req := &Request{PaymentType: domain.PaymentPayPal, PaypalID: "alice@example.com"}
	require.NoError(t, s.Validate(req))
	var p domain.Payment
	s.Process(&p, req)
	assert.Equal(t, "PayPal ID: alice@example.com", p.Note)
}

func TestEWalletStrategy(t *testing.T) {
	s := &EWalletStrategy{NewDefaultWalletFactory()}

	// Missing provider selector
	err := s.Validate(&Request{PaymentType: domain.PaymentEWallet})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInvalidPayment, e.Code)

	// Unknown provider
	err = s.Validate(&Request{PaymentType: domain.PaymentEWallet, WalletType: "CASHAPP", WalletID: "w-1"})
	e = apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeUnsupportedWallet, e.Code)

	// Missing wallet id
	err = s.Validate(&Request{PaymentType: domain.PaymentEWallet, WalletType: domain.WalletGrabPay})
	e = apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInvalidPayment, e.Code)

	// Each provider stamps its own note
	for _, wt := range []domain.WalletType{domain.WalletBoostPay, domain.WalletGrabPay, domain.WalletTouchNGo} {
		req := &Request{PaymentType: domain.PaymentEWallet, WalletType: wt, WalletID: "w-42"}
		require.NoError(t, s.Validate(req))
		var p domain.Payment
		s.Process(&p, req)
		assert.Equal(t, string(wt)+" - w-42", p.Note)
	}
}
