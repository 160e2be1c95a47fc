package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"trendkart/models"
	"trendkart/repositories"
)

const (
	// Orders below this subtotal pay a flat shipping surcharge.
	FreeShippingThresholdINR = 499
	ShippingFeeINR           = 49

	// Approximate conversion for the processor, which settles in USD.
	inrPerUSD = 83
)

var ErrPaymentsNotConfigured = errors.New("payment processor is not configured")

type PaymentLine struct {
	Name               string
	Description        string
	UnitAmountUSDCents int64
	Quantity           int64
}

type PaymentSession struct {
	ID  string
	URL string
}

// PaymentProvider creates a hosted payment session for an order. The
// Stripe implementation lives in libs.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, order *models.Order, lines []PaymentLine, successURL, cancelURL string) (*PaymentSession, error)
}

type CheckoutService struct {
	store    repositories.Store
	payments PaymentProvider
	baseURL  string
}

func NewCheckoutService(store repositories.Store, payments PaymentProvider, baseURL string) *CheckoutService {
	return &CheckoutService{store: store, payments: payments, baseURL: baseURL}
}

func toUSDCents(amountINR int) int64 {
	return int64(math.Round(float64(amountINR) / inrPerUSD * 100))
}

// Checkout validates every line item, records the order in the pending
// unpaid state, and opens a payment session with the order id embedded as
// metadata. No order is created if any item is unknown or short of stock;
// marking the order paid happens only from the verified payment webhook.
func (s *CheckoutService) Checkout(ctx context.Context, userID, userEmail string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if s.payments == nil {
		return nil, ErrPaymentsNotConfigured
	}

	lines := []PaymentLine{}
	orderItems := []models.OrderItem{}
	totalINR := 0

	for _, item := range req.Items {
		product, err := s.store.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", item.ProductID, err)
		}
		if product.Stock < item.Qty {
			return nil, fmt.Errorf("%w for %q", repositories.ErrInsufficientStock, product.Title)
		}

		lines = append(lines, PaymentLine{
			Name:               product.Title,
			Description:        truncate(product.Description, 500),
			UnitAmountUSDCents: toUSDCents(product.PriceINR),
			Quantity:           int64(item.Qty),
		})
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			PriceINR:  product.PriceINR,
			Qty:       item.Qty,
		})
		totalINR += product.PriceINR * item.Qty
	}

	if totalINR < FreeShippingThresholdINR {
		totalINR += ShippingFeeINR
		lines = append(lines, PaymentLine{
			Name:               "Shipping",
			Description:        "Standard delivery",
			UnitAmountUSDCents: toUSDCents(ShippingFeeINR),
			Quantity:           1,
		})
	}

	order := &models.Order{
		ID:              "order-" + uuid.NewString(),
		UserID:          userID,
		UserEmail:       userEmail,
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   "stripe",
		TotalPriceINR:   totalINR,
		IsPaid:          false,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.store.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	successURL := fmt.Sprintf("%s/checkout?success=true&orderId=%s", s.baseURL, order.ID)
	cancelURL := fmt.Sprintf("%s/checkout?canceled=true", s.baseURL)

	session, err := s.payments.CreateCheckoutSession(ctx, order, lines, successURL, cancelURL)
	if err != nil {
		return nil, fmt.Errorf("payment processing error: %w", err)
	}

	return &models.CheckoutResponse{
		OrderID:   order.ID,
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
