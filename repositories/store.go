package repositories

import (
	"context"
	"errors"
	"time"

	"trendkart/models"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter carries the catalog query parameters. Both store
// implementations must interpret it identically.
type ProductFilter struct {
	Search   string
	Category string
	Brand    string
	MinPrice int
	MaxPrice int
	Sort     string
	Page     int
	Limit    int
}

// Store is the single data-access contract. It is implemented by the
// seeded in-memory store and by the MongoDB store; the backend is chosen
// once at startup and injected into the services.
type Store interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id, role string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	DeleteUser(ctx context.Context, id string) error

	// PlaceOrder verifies and decrements stock for every line item and
	// inserts the order. On any failure no order is recorded.
	PlaceOrder(ctx context.Context, o *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
	MarkOrderPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, bool, error)
	RefundOrder(ctx context.Context, id string, amountINR int, reason string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// applyProductFilter is the reference filtering implementation, shared by
// the memory store and by tests that check the Mongo translation against
// it.
func applyProductFilter(products []models.Product, f ProductFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesFilter(p, f) {
			continue
		}
		filtered = append(filtered, p)
	}
	sortProducts(filtered, f.Sort)
	return filtered
}
