package payout

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// DestinationResolver maps a marketplace user to a Stripe connected account
type DestinationResolver func(ctx context.Context, recipientID string) (string, error)

// StripeConfig holds the Stripe connection settings
type StripeConfig struct {
	SecretKey string
	Currency  string
	// Backends overrides the API backends, used to point at a test server
	Backends *stripe.Backends
}

// StripePayoutService moves funds with Stripe Connect transfers. The payout
// reference is the idempotency key, so a resend never transfers twice.
type StripePayoutService struct {
	api      *client.API
	currency string
	resolve  DestinationResolver
	logger   coreport.Logger
}

var _ external.PayoutService = (*StripePayoutService)(nil)

// NewStripePayoutService creates a Stripe-backed payout service
func NewStripePayoutService(config StripeConfig, resolve DestinationResolver, logger coreport.Logger) (*StripePayoutService, error) {
	if config.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if config.Currency == "" {
		config.Currency = string(stripe.CurrencyUSD)
	}
	if resolve == nil {
		resolve = func(_ context.Context, recipientID string) (string, error) { return recipientID, nil }
	}

	api := &client.API{}
	api.Init(config.SecretKey, config.Backends)

	return &StripePayoutService{
		api:      api,
		currency: config.Currency,
		resolve:  resolve,
		logger:   logger.Named("payout_stripe"),
	}, nil
}

// ReleaseFunds creates a transfer to the recipient's connected account
func (s *StripePayoutService) ReleaseFunds(ctx context.Context, recipientID string, amount int64, reference string) error {
	destination, err := s.resolve(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("%w: %s", external.ErrPayoutDeclined, err.Error())
	}

	params := &stripe.TransferParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(s.currency),
		Destination:   stripe.String(destination),
		TransferGroup: stripe.String(reference),
	}
	params.Context = ctx
	params.SetIdempotencyKey(reference)
	params.AddMetadata("payout_reference", reference)

	transfer, err := s.api.Transfers.New(params)
	if err != nil {
		return s.classify(reference, err)
	}

	s.logger.Info("Stripe transfer created", map[string]any{
		"reference":   reference,
		"transfer_id": transfer.ID,
		"amount":      amount,
	})
	return nil
}

// classify separates definitive rejections from unknown outcomes
func (s *StripePayoutService) classify(reference string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		fields := map[string]any{
			"reference":   reference,
			"type":        string(stripeErr.Type),
			"code":        string(stripeErr.Code),
			"http_status": stripeErr.HTTPStatusCode,
		}
		switch stripeErr.Type {
		case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
			s.logger.Warn("Stripe declined transfer", fields)
			return fmt.Errorf("%w: %s", external.ErrPayoutDeclined, stripeErr.Msg)
		}
		s.logger.Error("Stripe transfer outcome unknown", fields)
		return fmt.Errorf("stripe %s: %s", stripeErr.Type, stripeErr.Msg)
	}

	s.logger.Error("Stripe transfer outcome unknown", map[string]any{
		"reference": reference,
		"error":     err.Error(),
	})
	return fmt.Errorf("stripe transfer: %w", err)
}

// StaticDestinations resolves recipients from a fixed user to account map.
// User IDs are opaque and matched exactly; an unmapped recipient is declined.
func StaticDestinations(accounts map[string]string) DestinationResolver {
	known := make(map[string]string, len(accounts))
	for user, account := range accounts {
		known[user] = account
	}
	return func(_ context.Context, recipientID string) (string, error) {
		account, ok := known[recipientID]
		if !ok || account == "" {
			return "", fmt.Errorf("no connected account for %s", recipientID)
		}
		return account, nil
	}
}
