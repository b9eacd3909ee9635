package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	paymenterrors "github.com/louiscollinsjr/miere-app/internal/payment/errors"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const DefaultCurrency = "ron"

// Processor creates a payment intent at the external processor and
// returns the client secret the payment widget completes the charge
// with. Amount is in the smallest currency unit (bani for RON).
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type stripeProcessor struct {
	api *client.API
}

// NewStripeProcessor builds the Stripe-backed processor. The explicit
// HTTP timeout caps how long a checkout request can hang on the
// upstream call; a timeout surfaces on the same path as any other
// processor failure.
func NewStripeProcessor(secretKey string, timeout time.Duration) Processor {
	api := &client.API{}
	api.Init(secretKey, stripe.NewBackends(&http.Client{Timeout: timeout}))
	return &stripeProcessor{api: api}
}

func (p *stripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	Configured() bool
	CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error)
}

type service struct {
	processor Processor
}

// NewService wires the processor handle in once at startup; a nil
// processor marks the service misconfigured and every request fails
// without an outbound call.
func NewService(p Processor) Service {
	return &service{processor: p}
}

func (s *service) Configured() bool {
	return s.processor != nil
}

func (s *service) CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error) {
	if !s.Configured() {
		return CreateIntentResponse{}, paymenterrors.ErrNotConfigured
	}

	if !req.Amount.IsPositive() {
		return CreateIntentResponse{}, paymenterrors.ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	secret, err := s.processor.CreateIntent(ctx, SmallestUnit(req.Amount), currency)
	if err != nil {
		return CreateIntentResponse{}, fmt.Errorf("create payment intent: %w", err)
	}

	return CreateIntentResponse{ClientSecret: secret}, nil
}

// SmallestUnit converts a decimal major-unit amount to the processor's
// integer smallest unit. Rounding is half away from zero, so 19.995 lei
// becomes 2000 bani.
func SmallestUnit(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
