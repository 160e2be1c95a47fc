package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"trendkart/models"
)

func testStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	now := time.Now()
	products := []models.Product{
		{ID: "p1", Slug: "wireless-earbuds", Title: "Wireless Earbuds", Description: "Bluetooth earbuds with charging case", Category: "Electronics", Brand: "Sony", PriceINR: 2999, Stock: 10, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "p2", Slug: "cotton-t-shirt", Title: "Cotton T-Shirt", Description: "Plain crew neck tee", Category: "Fashion", Brand: "Levi's", PriceINR: 450, Stock: 5, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p3", Slug: "badminton-racket", Title: "Badminton Racket", Description: "Lightweight graphite racket", Category: "Sports", Brand: "Yonex", PriceINR: 1800, Stock: 2, CreatedAt: now.Add(-1 * time.Hour)},
	}
	for i := range products {
		if err := s.CreateProduct(context.Background(), &products[i]); err != nil {
			t.Fatalf("seed product %s: %v", products[i].ID, err)
		}
	}
	return s
}

func TestListProductsFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, total, err := s.ListProducts(ctx, ProductFilter{Category: "Electronics"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("category filter: total=%d got=%v", total, got)
	}

	// Search matches either title or description, case-insensitively.
	_, total, _ = s.ListProducts(ctx, ProductFilter{Search: "GRAPHITE"})
	if total != 1 {
		t.Errorf("search by description: total=%d, want 1", total)
	}

	_, total, _ = s.ListProducts(ctx, ProductFilter{MinPrice: 500, MaxPrice: 2000})
	if total != 1 {
		t.Errorf("price range: total=%d, want 1", total)
	}

	got, _, _ = s.ListProducts(ctx, ProductFilter{Sort: "price-asc"})
	if got[0].ID != "p2" || got[2].ID != "p1" {
		t.Errorf("price-asc order wrong: %v", productIDs(got))
	}

	got, _, _ = s.ListProducts(ctx, ProductFilter{Sort: "newest"})
	if got[0].ID != "p3" {
		t.Errorf("newest should lead with p3, got %v", productIDs(got))
	}
}

func TestListProductsPagination(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, total, err := s.ListProducts(ctx, ProductFilter{Sort: "price-asc", Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if total != 3 || len(got) != 1 {
		t.Errorf("page 2 of limit 2: total=%d len=%d", total, len(got))
	}

	got, total, _ = s.ListProducts(ctx, ProductFilter{Page: 9, Limit: 2})
	if total != 3 || len(got) != 0 {
		t.Errorf("out-of-range page should be empty: total=%d len=%d", total, len(got))
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	order := &models.Order{
		ID:     "order-1",
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: "p2", Qty: 3},
			{ProductID: "p3", Qty: 2},
		},
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.PlaceOrder(ctx, order); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	p2, _ := s.GetProductByID(ctx, "p2")
	p3, _ := s.GetProductByID(ctx, "p3")
	if p2.Stock != 2 || p3.Stock != 0 {
		t.Errorf("stock after order: p2=%d p3=%d, want 2 and 0", p2.Stock, p3.Stock)
	}

	if _, err := s.GetOrderByID(ctx, "order-1"); err != nil {
		t.Errorf("order not recorded: %v", err)
	}
}

func TestPlaceOrderFailureLeavesNothingBehind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Second line exceeds stock; the first line must not be decremented.
	order := &models.Order{
		ID:     "order-1",
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: "p1", Qty: 1},
			{ProductID: "p3", Qty: 50},
		},
	}
	if err := s.PlaceOrder(ctx, order); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("got %v, want ErrInsufficientStock", err)
	}

	p1, _ := s.GetProductByID(ctx, "p1")
	if p1.Stock != 10 {
		t.Errorf("stock touched on failed order: %d", p1.Stock)
	}
	if _, err := s.GetOrderByID(ctx, "order-1"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("failed order was recorded: %v", err)
	}

	unknown := &models.Order{ID: "order-2", Items: []models.OrderItem{{ProductID: "ghost", Qty: 1}}}
	if err := s.PlaceOrder(ctx, unknown); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("got %v, want ErrProductNotFound", err)
	}
}

func TestCreateUserEmailCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u := &models.User{ID: "u1", Email: "Shopper@Example.com", Name: "Shopper"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Email != "shopper@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}

	dup := &models.User{ID: "u2", Email: "SHOPPER@example.COM"}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	found, err := s.GetUserByEmail(ctx, "sHoPPer@exAmple.com")
	if err != nil || found.ID != "u1" {
		t.Errorf("lookup by mixed-case email failed: %v %v", found, err)
	}
}

func TestMarkOrderPaidIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	order := &models.Order{ID: "order-1", Items: []models.OrderItem{{ProductID: "p1", Qty: 1}}, TotalPriceINR: 2999, Status: models.OrderStatusPending}
	if err := s.PlaceOrder(ctx, order); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	_, paid, err := s.MarkOrderPaid(ctx, "order-1", models.PaymentResult{ID: "cs_1", Status: "paid"})
	if err != nil || !paid {
		t.Fatalf("first MarkOrderPaid: paid=%v err=%v", paid, err)
	}
	got, paid, err := s.MarkOrderPaid(ctx, "order-1", models.PaymentResult{ID: "cs_2"})
	if err != nil || paid {
		t.Fatalf("replayed MarkOrderPaid: paid=%v err=%v", paid, err)
	}
	if got.PaymentResult.ID != "cs_1" {
		t.Errorf("payment result overwritten on replay: %q", got.PaymentResult.ID)
	}
}
