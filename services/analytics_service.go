package services

import (
	"context"
	"strconv"
	"time"

	"trendkart/models"
	"trendkart/repositories"
)

// AnalyticsService aggregates the order ledger and user list into fixed
// trailing windows. There is no materialization; every report rescans the
// full collections.
type AnalyticsService struct {
	store repositories.Store
}

func NewAnalyticsService(store repositories.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

func countsRevenue(o models.Order) bool {
	return o.IsPaid && !o.IsRefunded
}

func (s *AnalyticsService) Stats(ctx context.Context) (*models.AdminStats, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	_, totalProducts, err := s.store.ListProducts(ctx, repositories.ProductFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}

	stats := &models.AdminStats{
		TotalProducts: totalProducts,
		TotalOrders:   len(orders),
		TotalUsers:    len(users),
	}

	for _, o := range orders {
		if countsRevenue(o) {
			stats.TotalRevenueINR += o.TotalPriceINR
		}
		if o.IsRefunded {
			stats.ReturnsAmountINR += o.RefundAmountINR
		}
		switch o.Status {
		case models.OrderStatusPending:
			stats.OrdersByStatus.Pending++
		case models.OrderStatusProcessing:
			stats.OrdersByStatus.Processing++
		case models.OrderStatusShipped:
			stats.OrdersByStatus.Shipped++
		case models.OrderStatusDelivered:
			stats.OrdersByStatus.Delivered++
		case models.OrderStatusCancelled:
			stats.OrdersByStatus.Cancelled++
		}
	}

	today := time.Now()
	for i := 29; i >= 0; i-- {
		day := startOfDay(today.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		bucket := models.SalesByDay{Date: day.Format("2006-01-02")}
		for _, o := range orders {
			if o.CreatedAt.Before(day) || !o.CreatedAt.Before(next) {
				continue
			}
			bucket.OrderCount++
			if countsRevenue(o) {
				bucket.TotalSalesINR += o.TotalPriceINR
			}
			if o.IsRefunded {
				bucket.ReturnsINR += o.RefundAmountINR
			}
		}
		stats.SalesByDay = append(stats.SalesByDay, bucket)
	}

	return stats, nil
}

func (s *AnalyticsService) Revenue(ctx context.Context) (*models.RevenueReport, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	paid := []models.Order{}
	for _, o := range orders {
		if countsRevenue(o) {
			paid = append(paid, o)
		}
	}

	report := &models.RevenueReport{}
	for _, o := range paid {
		report.TotalRevenueINR += o.TotalPriceINR
	}
	// Cost data is not modeled, so profit mirrors revenue.
	report.ProfitINR = report.TotalRevenueINR

	today := time.Now()

	for i := 11; i >= 0; i-- {
		monthStart := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, today.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)

		bucket := models.RevenueBucket{Label: monthStart.Format("Jan 2006")}
		for _, o := range paid {
			if !o.CreatedAt.Before(monthStart) && o.CreatedAt.Before(monthEnd) {
				bucket.RevenueINR += o.TotalPriceINR
				bucket.Orders++
			}
		}
		report.Monthly = append(report.Monthly, bucket)
	}

	for i := 11; i >= 0; i-- {
		weekStart := startOfDay(today.AddDate(0, 0, -(i+1)*7))
		weekEnd := weekStart.AddDate(0, 0, 7)

		bucket := models.RevenueBucket{
			Label: "Week " + strconv.Itoa(12-i),
			Date:  weekStart.Format("Jan 2"),
		}
		for _, o := range paid {
			if !o.CreatedAt.Before(weekStart) && o.CreatedAt.Before(weekEnd) {
				bucket.RevenueINR += o.TotalPriceINR
				bucket.Orders++
			}
		}
		report.Weekly = append(report.Weekly, bucket)
	}

	for i := 29; i >= 0; i-- {
		day := startOfDay(today.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		bucket := models.RevenueBucket{
			Label: day.Format("Jan 2"),
			Date:  day.Format("2006-01-02"),
		}
		for _, o := range paid {
			if !o.CreatedAt.Before(day) && o.CreatedAt.Before(next) {
				bucket.RevenueINR += o.TotalPriceINR
				bucket.Orders++
			}
		}
		report.Daily = append(report.Daily, bucket)
	}

	return report, nil
}

func (s *AnalyticsService) Users(ctx context.Context) (*models.UsersReport, error) {
	users, err := s.store.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.UsersReport{
		TotalUsers: len(users),
		Users:      users,
	}

	today := time.Now()
	for i := 11; i >= 0; i-- {
		monthStart := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, today.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)

		bucket := models.UserCountBucket{Month: monthStart.Format("Jan 2006")}
		for _, u := range users {
			if !u.CreatedAt.Before(monthStart) && u.CreatedAt.Before(monthEnd) {
				bucket.Count++
			}
		}
		report.NewUsersByMonth = append(report.NewUsersByMonth, bucket)
	}

	return report, nil
}

func (s *AnalyticsService) Refunds(ctx context.Context) (*models.RefundsReport, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	refunded := []models.Order{}
	for _, o := range orders {
		if o.IsRefunded {
			refunded = append(refunded, o)
		}
	}

	report := &models.RefundsReport{
		TotalReturns:  len(refunded),
		RefundReasons: map[string]int{},
	}
	for _, o := range refunded {
		report.TotalRefundedINR += o.RefundAmountINR
		reason := o.RefundReason
		if reason == "" {
			reason = "Not specified"
		}
		report.RefundReasons[reason]++
	}

	today := time.Now()
	for i := 29; i >= 0; i-- {
		day := startOfDay(today.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		bucket := models.RefundBucket{
			Date:  day.Format("2006-01-02"),
			Label: day.Format("Jan 2"),
		}
		for _, o := range refunded {
			at := o.CreatedAt
			if o.RefundedAt != nil {
				at = *o.RefundedAt
			}
			if !at.Before(day) && at.Before(next) {
				bucket.AmountINR += o.RefundAmountINR
				bucket.Count++
			}
		}
		report.RefundTrend = append(report.RefundTrend, bucket)
	}

	return report, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
