package libs

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"trendkart/models"
	"trendkart/services"
)

// StripeProvider implements services.PaymentProvider on Stripe Checkout
// and verifies incoming webhook events against the endpoint secret.
type StripeProvider struct {
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, order *models.Order, lines []services.PaymentLine, successURL, cancelURL string) (*services.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}
	params.Context = ctx

	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Name),
		}
		if line.Description != "" {
			productData.Description = stripe.String(line.Description)
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String("usd"),
				ProductData: productData,
				UnitAmount:  stripe.Int64(line.UnitAmountUSDCents),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params.AddMetadata("order_id", order.ID)
	params.AddMetadata("user_id", order.UserID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	return &services.PaymentSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyEvent checks the webhook signature and returns the parsed event.
func (p *StripeProvider) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, p.webhookSecret)
}
