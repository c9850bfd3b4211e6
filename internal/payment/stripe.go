// Package payment wraps the external payment processor. The service only
// creates payment intents; confirmation happens on the client side and is
// reported back through the offer mark-paid flow.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type Processor interface {
	// CreateIntent opens a card payment for amountCents (minor units) and
	// returns the client secret the frontend completes the payment with.
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
