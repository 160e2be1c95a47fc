package services

import (
	"context"
	"sort"

	"trendkart/models"
	"trendkart/repositories"
)

type OrderService struct {
	store repositories.Store
}

func NewOrderService(store repositories.Store) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.store.GetOrdersByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.store.GetOrderByID(ctx, id)
}

// ListAll returns a page of orders for the back office, optionally
// filtered by status. The order ledger is scanned in full on every call.
func (s *OrderService) ListAll(ctx context.Context, status string, page, limit int) ([]models.Order, int, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, 0, err
	}

	if status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	total := len(orders)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.Order{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return orders[start:end], total, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	return s.store.UpdateOrderStatus(ctx, id, status)
}

// MarkPaid is idempotent: the second report of the same payment leaves
// the order untouched and reports newlyPaid=false.
func (s *OrderService) MarkPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, bool, error) {
	return s.store.MarkOrderPaid(ctx, id, result)
}

func (s *OrderService) Refund(ctx context.Context, id string, amountINR int, reason string) (*models.Order, error) {
	if reason == "" {
		reason = "Customer requested refund"
	}
	return s.store.RefundOrder(ctx, id, amountINR, reason)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteOrder(ctx, id)
}
