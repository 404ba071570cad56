package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

// Gateway charges a card for an online payment and returns the processor's
// charge reference.
type Gateway interface {
	Charge(amount float64, description, cardToken string) (string, error)
}

// StripeGateway is the card processor used for online collections. Amounts
// are naira; Stripe expects the minor unit (kobo).
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(amount float64, description, cardToken string) (string, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(int64(amount * 100)),
		Currency:    stripe.String("ngn"),
		Description: stripe.String(description),
	}
	if err := params.SetSource(cardToken); err != nil {
		return "", fmt.Errorf("invalid card token: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", fmt.Errorf("charge failed: %w", err)
	}
	if ch.Status == "failed" {
		return "", ErrGatewayDeclined
	}
	return ch.ID, nil
}
