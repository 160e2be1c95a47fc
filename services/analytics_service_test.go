package services

import (
	"context"
	"testing"
	"time"

	"trendkart/models"
	"trendkart/repositories"
)

func analyticsFixture(t *testing.T) (*AnalyticsService, *repositories.MemoryStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	svc := NewAnalyticsService(store)

	p := models.Product{ID: "p1", Slug: "wireless-earbuds", Title: "Wireless Earbuds", PriceINR: 2999, Stock: 100, CreatedAt: time.Now()}
	if err := store.CreateProduct(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return svc, store
}

func placeTestOrder(t *testing.T, store *repositories.MemoryStore, id string, totalINR int, createdAt time.Time, paid bool) {
	t.Helper()
	o := &models.Order{
		ID:            id,
		UserID:        "u1",
		Items:         []models.OrderItem{{ProductID: "p1", Qty: 1, PriceINR: totalINR}},
		TotalPriceINR: totalINR,
		Status:        models.OrderStatusPending,
		CreatedAt:     createdAt,
	}
	if err := store.PlaceOrder(context.Background(), o); err != nil {
		t.Fatalf("place order %s: %v", id, err)
	}
	if paid {
		if _, _, err := store.MarkOrderPaid(context.Background(), id, models.PaymentResult{ID: "cs_" + id, Status: "paid"}); err != nil {
			t.Fatalf("mark paid %s: %v", id, err)
		}
	}
}

func TestStats(t *testing.T) {
	svc, store := analyticsFixture(t)
	ctx := context.Background()
	now := time.Now()

	placeTestOrder(t, store, "o1", 1000, now.Add(-3*time.Minute), true)
	placeTestOrder(t, store, "o2", 2000, now.AddDate(0, 0, -3), true)
	placeTestOrder(t, store, "o3", 500, now.Add(-2*time.Minute), false)
	placeTestOrder(t, store, "o4", 800, now.Add(-1*time.Minute), true)
	if _, err := store.RefundOrder(ctx, "o4", 800, "damaged"); err != nil {
		t.Fatalf("refund: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	// Refunded orders drop out of revenue and show up as returns.
	if stats.TotalRevenueINR != 3000 {
		t.Errorf("revenue = %d, want 3000", stats.TotalRevenueINR)
	}
	if stats.ReturnsAmountINR != 800 {
		t.Errorf("returns = %d, want 800", stats.ReturnsAmountINR)
	}
	if stats.TotalOrders != 4 || stats.TotalProducts != 1 {
		t.Errorf("totals wrong: orders=%d products=%d", stats.TotalOrders, stats.TotalProducts)
	}
	if stats.OrdersByStatus.Pending != 1 || stats.OrdersByStatus.Processing != 2 || stats.OrdersByStatus.Cancelled != 1 {
		t.Errorf("status counts wrong: %+v", stats.OrdersByStatus)
	}

	if len(stats.SalesByDay) != 30 {
		t.Fatalf("sales trend has %d days, want 30", len(stats.SalesByDay))
	}
	today := stats.SalesByDay[29]
	if today.OrderCount != 3 || today.TotalSalesINR != 1000 || today.ReturnsINR != 800 {
		t.Errorf("today's bucket wrong: %+v", today)
	}
}

func TestRevenueBuckets(t *testing.T) {
	svc, store := analyticsFixture(t)
	ctx := context.Background()
	now := time.Now()

	placeTestOrder(t, store, "o1", 1500, now.Add(-2*time.Minute), true)
	placeTestOrder(t, store, "o2", 700, now.AddDate(0, -2, 0), true)
	placeTestOrder(t, store, "o3", 9999, now.Add(-3*time.Minute), false) // unpaid, excluded

	report, err := svc.Revenue(ctx)
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}

	if report.TotalRevenueINR != 2200 {
		t.Errorf("total revenue = %d, want 2200", report.TotalRevenueINR)
	}
	if len(report.Monthly) != 12 || len(report.Weekly) != 12 || len(report.Daily) != 30 {
		t.Fatalf("bucket counts: monthly=%d weekly=%d daily=%d", len(report.Monthly), len(report.Weekly), len(report.Daily))
	}

	currentMonth := report.Monthly[11]
	if currentMonth.Label != now.Format("Jan 2006") {
		t.Errorf("last monthly bucket label = %q", currentMonth.Label)
	}
	if currentMonth.RevenueINR != 1500 || currentMonth.Orders != 1 {
		t.Errorf("current month bucket wrong: %+v", currentMonth)
	}

	lastDay := report.Daily[29]
	if lastDay.RevenueINR != 1500 {
		t.Errorf("today's revenue = %d, want 1500", lastDay.RevenueINR)
	}
}

func TestUsersReport(t *testing.T) {
	svc, store := analyticsFixture(t)
	ctx := context.Background()
	now := time.Now()

	users := []models.User{
		{ID: "u1", Email: "a@example.com", Role: "user", CreatedAt: now.Add(-1 * time.Minute)},
		{ID: "u2", Email: "b@example.com", Role: "user", CreatedAt: now.AddDate(0, -1, 0)},
	}
	for i := range users {
		if err := store.CreateUser(ctx, &users[i]); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	report, err := svc.Users(ctx)
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if report.TotalUsers != 2 || len(report.NewUsersByMonth) != 12 {
		t.Fatalf("totals wrong: users=%d buckets=%d", report.TotalUsers, len(report.NewUsersByMonth))
	}
	if report.NewUsersByMonth[11].Count != 1 {
		t.Errorf("current month signups = %d, want 1", report.NewUsersByMonth[11].Count)
	}
}

func TestRefundsReport(t *testing.T) {
	svc, store := analyticsFixture(t)
	ctx := context.Background()
	now := time.Now()

	placeTestOrder(t, store, "o1", 1000, now.Add(-2*time.Minute), true)
	placeTestOrder(t, store, "o2", 600, now.Add(-3*time.Minute), true)
	if _, err := store.RefundOrder(ctx, "o1", 1000, "damaged"); err != nil {
		t.Fatalf("refund o1: %v", err)
	}
	if _, err := store.RefundOrder(ctx, "o2", 600, ""); err != nil {
		t.Fatalf("refund o2: %v", err)
	}

	report, err := svc.Refunds(ctx)
	if err != nil {
		t.Fatalf("Refunds: %v", err)
	}
	if report.TotalReturns != 2 || report.TotalRefundedINR != 1600 {
		t.Errorf("totals wrong: returns=%d amount=%d", report.TotalReturns, report.TotalRefundedINR)
	}
	if report.RefundReasons["damaged"] != 1 || report.RefundReasons["Not specified"] != 1 {
		t.Errorf("reason breakdown wrong: %v", report.RefundReasons)
	}
	if len(report.RefundTrend) != 30 {
		t.Fatalf("trend has %d days, want 30", len(report.RefundTrend))
	}
	if report.RefundTrend[29].Count != 2 || report.RefundTrend[29].AmountINR != 1600 {
		t.Errorf("today's refund bucket wrong: %+v", report.RefundTrend[29])
	}
}
