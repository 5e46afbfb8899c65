package payment

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// WalletStrategy is the contract each e-wallet provider implements
type WalletStrategy interface {
	WalletType() domain.WalletType           // Provider this strategy handles
	Validate(req *Request) error             // Checks provider-specific fields
	Process(p *domain.Payment, req *Request) // Annotates the payment record
}

// WalletFactory resolves wallet strategies by provider
type WalletFactory struct {
	strategies map[domain.WalletType]WalletStrategy // Registered providers
}

// NewWalletFactory registers the given wallet strategies
func NewWalletFactory(strategies ...WalletStrategy) *WalletFactory {
	m := make(map[domain.WalletType]WalletStrategy, len(strategies))
	for _, s := range strategies {
		m[s.WalletType()] = s // Key each provider by its wallet type
	}
	return &WalletFactory{strategies: m}
}

// NewDefaultWalletFactory registers every supported e-wallet provider
func NewDefaultWalletFactory() *WalletFactory {
	return NewWalletFactory(
		walletProvider{domain.WalletBoostPay}, // BoostPay
		walletProvider{domain.WalletGrabPay},  // GrabPay
		walletProvider{domain.WalletTouchNGo}, // Touch 'n Go
	)
}

// Strategy returns the wallet strategy for the given provider
func (f *WalletFactory) Strategy(t domain.WalletType) (WalletStrategy, error) {
	s, ok := f.strategies[t]
	if !ok {
		return nil, apperr.UnsupportedWalletType(string(t)) // Unknown provider
	}
	return s, nil
}

// walletProvider implements the shared provider behavior. Every supported
// wallet requires a wallet id and stamps "<PROVIDER> - <id>" as the note.
type walletProvider struct {
	kind domain.WalletType // Provider identity
}

// WalletType returns the provider handled by this strategy
func (w walletProvider) WalletType() domain.WalletType {
	return w.kind
}

// Validate checks that a wallet id was supplied
func (w walletProvider) Validate(req *Request) error {
	if req.WalletID == "" {
		return apperr.InvalidPayment("Wallet ID is required for e-wallet payments")
	}
	return nil
}

// Process stamps the provider and wallet id onto the payment note
func (w walletProvider) Process(p *domain.Payment, req *Request) {
	logrus.WithFields(logrus.Fields{
		"wallet": w.kind,   // Provider
		"amount": p.Amount, // Amount charged
	}).Info("Processing e-wallet payment")
	p.Note = string(w.kind) + " - " + req.WalletID
}

// EWalletStrategy handles E_WALLET payments by delegating to the provider
// selected in the request
type EWalletStrategy struct {
	Wallets *WalletFactory // Provider registry
}

// Type returns the payment type handled by this strategy
func (s *EWalletStrategy) Type() domain.PaymentType {
	return domain.PaymentEWallet
}

// Validate checks the provider selector and delegates provider validation
func (s *EWalletStrategy) Validate(req *Request) error {
	if req.WalletType == "" {
		return apperr.InvalidPayment("E-Wallet type is required")
	}
	wallet, err := s.Wallets.Strategy(req.WalletType)
	if err != nil {
		return err // Unknown provider
	}
	return wallet.Validate(req)
}

// Process delegates to the provider selected in the request
func (s *EWalletStrategy) Process(p *domain.Payment, req *Request) {
	// Validate ran first, so the provider lookup cannot fail here
	wallet, err := s.Wallets.Strategy(req.WalletType)
	if err != nil {
		return
	}
	wallet.Process(p, req)
}
