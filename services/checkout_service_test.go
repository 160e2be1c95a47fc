package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trendkart/models"
	"trendkart/repositories"
)

type fakePaymentProvider struct {
	lastOrder  *models.Order
	lastLines  []PaymentLine
	successURL string
	failWith   error
}

func (f *fakePaymentProvider) CreateCheckoutSession(ctx context.Context, order *models.Order, lines []PaymentLine, successURL, cancelURL string) (*PaymentSession, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastOrder = order
	f.lastLines = lines
	f.successURL = successURL
	return &PaymentSession{ID: "cs_test_123", URL: "https://checkout.test/cs_test_123"}, nil
}

func checkoutFixture(t *testing.T) (*CheckoutService, *repositories.MemoryStore, *fakePaymentProvider) {
	t.Helper()
	store := repositories.NewMemoryStore()
	products := []models.Product{
		{ID: "p1", Slug: "cotton-t-shirt", Title: "Cotton T-Shirt", PriceINR: 450, Stock: 5, CreatedAt: time.Now()},
		{ID: "p2", Slug: "badminton-racket", Title: "Badminton Racket", PriceINR: 1800, Stock: 2, CreatedAt: time.Now()},
	}
	for i := range products {
		if err := store.CreateProduct(context.Background(), &products[i]); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	provider := &fakePaymentProvider{}
	return NewCheckoutService(store, provider, "https://shop.test"), store, provider
}

func TestCheckoutAddsShippingBelowThreshold(t *testing.T) {
	svc, store, provider := checkoutFixture(t)
	ctx := context.Background()

	resp, err := svc.Checkout(ctx, "u1", "shopper@example.com", models.CheckoutRequest{
		Items: []models.CheckoutItemRequest{{ProductID: "p1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	// 450 subtotal is under the free-shipping threshold, so the flat fee
	// lands the total exactly on 499.
	order, err := store.GetOrderByID(ctx, resp.OrderID)
	if err != nil {
		t.Fatalf("order not recorded: %v", err)
	}
	if order.TotalPriceINR != 499 {
		t.Errorf("total = %d, want 499", order.TotalPriceINR)
	}
	if order.Status != models.OrderStatusPending || order.IsPaid {
		t.Errorf("new order should be pending and unpaid: status=%q paid=%v", order.Status, order.IsPaid)
	}

	if len(provider.lastLines) != 2 || provider.lastLines[1].Name != "Shipping" {
		t.Errorf("expected product plus shipping line, got %v", provider.lastLines)
	}
	if !strings.Contains(provider.successURL, resp.OrderID) {
		t.Errorf("success URL should carry the order id: %q", provider.successURL)
	}
	if resp.SessionID != "cs_test_123" {
		t.Errorf("session id = %q", resp.SessionID)
	}
}

func TestCheckoutNoShippingAtThreshold(t *testing.T) {
	svc, store, provider := checkoutFixture(t)
	ctx := context.Background()

	resp, err := svc.Checkout(ctx, "u1", "shopper@example.com", models.CheckoutRequest{
		Items: []models.CheckoutItemRequest{{ProductID: "p2", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	order, _ := store.GetOrderByID(ctx, resp.OrderID)
	if order.TotalPriceINR != 1800 {
		t.Errorf("total = %d, want 1800 with no surcharge", order.TotalPriceINR)
	}
	for _, line := range provider.lastLines {
		if line.Name == "Shipping" {
			t.Error("shipping line added above the threshold")
		}
	}
}

func TestCheckoutRejectsBadItems(t *testing.T) {
	svc, store, _ := checkoutFixture(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, "u1", "shopper@example.com", models.CheckoutRequest{
		Items: []models.CheckoutItemRequest{{ProductID: "ghost", Qty: 1}},
	})
	if !errors.Is(err, repositories.ErrProductNotFound) {
		t.Errorf("unknown product: got %v", err)
	}

	_, err = svc.Checkout(ctx, "u1", "shopper@example.com", models.CheckoutRequest{
		Items: []models.CheckoutItemRequest{{ProductID: "p2", Qty: 50}},
	})
	if !errors.Is(err, repositories.ErrInsufficientStock) {
		t.Errorf("oversized quantity: got %v", err)
	}

	// Neither failure may leave an order behind or touch stock.
	orders, _ := store.AllOrders(ctx)
	if len(orders) != 0 {
		t.Errorf("failed checkouts recorded orders: %v", orders)
	}
	p2, _ := store.GetProductByID(ctx, "p2")
	if p2.Stock != 2 {
		t.Errorf("stock touched by failed checkout: %d", p2.Stock)
	}
}

func TestCheckoutWithoutProvider(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewCheckoutService(store, nil, "https://shop.test")

	_, err := svc.Checkout(context.Background(), "u1", "shopper@example.com", models.CheckoutRequest{
		Items: []models.CheckoutItemRequest{{ProductID: "p1", Qty: 1}},
	})
	if !errors.Is(err, ErrPaymentsNotConfigured) {
		t.Errorf("got %v, want ErrPaymentsNotConfigured", err)
	}
}

func TestToUSDCents(t *testing.T) {
	// 83 INR converts to exactly one dollar.
	if got := toUSDCents(83); got != 100 {
		t.Errorf("toUSDCents(83) = %d, want 100", got)
	}
	if got := toUSDCents(499); got != 601 {
		t.Errorf("toUSDCents(499) = %d, want 601", got)
	}
}
