package repositories

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"trendkart/models"
	"trendkart/utils"
)

type seedProduct struct {
	title    string
	category string
	brand    string
	price    int
	desc     string
}

var seedCatalog = []seedProduct{
	{"Samsung Galaxy S24 Ultra", "Electronics", "Samsung", 124999, "Flagship smartphone with S Pen support and 200MP camera"},
	{"Apple iPhone 15 Pro Max", "Electronics", "Apple", 159900, "Premium smartphone with A17 Pro chip and titanium design"},
	{"Sony WH-1000XM5 Headphones", "Electronics", "Sony", 29990, "Industry-leading noise cancelling wireless headphones"},
	{"Samsung 55 inch QLED TV", "Electronics", "Samsung", 79999, "4K QLED Smart TV with Quantum Processor"},
	{"Apple MacBook Air M3", "Electronics", "Apple", 114900, "Thin and light laptop with M3 chip"},
	{"Sony PlayStation 5", "Electronics", "Sony", 49990, "Next-gen gaming console with DualSense controller"},
	{"Samsung Galaxy Watch 6", "Electronics", "Samsung", 28999, "Advanced smartwatch with health monitoring"},
	{"Apple AirPods Pro 2", "Electronics", "Apple", 24900, "Active noise cancelling earbuds with spatial audio"},
	{"LG 43 inch 4K Monitor", "Electronics", "LG", 45999, "Ultra HD monitor for productivity and entertainment"},
	{"Sony SRS-XB43 Speaker", "Electronics", "Sony", 14990, "Portable party speaker with extra bass"},
	{"Prestige Electric Kettle", "Home & Kitchen", "Prestige", 1299, "1.5 litre stainless steel electric kettle"},
	{"Philips Mixer Grinder", "Home & Kitchen", "Philips", 4999, "750W mixer grinder with three jars"},
	{"Prestige Induction Cooktop", "Home & Kitchen", "Prestige", 3499, "2000W induction cooktop with preset menus"},
	{"Philips Air Fryer", "Home & Kitchen", "Philips", 12999, "Rapid air technology for low-fat frying"},
	{"LG 260L Refrigerator", "Home & Kitchen", "LG", 28999, "Frost-free double door refrigerator"},
	{"Nike Air Max 270", "Fashion", "Nike", 13995, "Lifestyle sneakers with visible Air cushioning"},
	{"Adidas Ultraboost 22", "Fashion", "Adidas", 17999, "Responsive running shoes with Boost midsole"},
	{"Levi's 511 Slim Jeans", "Fashion", "Levi's", 3299, "Slim fit stretch denim jeans"},
	{"Puma Essential Hoodie", "Fashion", "Puma", 2499, "Cotton blend hoodie with kangaroo pocket"},
	{"Nike Dri-FIT T-Shirt", "Fashion", "Nike", 1495, "Moisture-wicking training t-shirt"},
	{"The Psychology of Money", "Books", "Penguin", 399, "Timeless lessons on wealth, greed, and happiness"},
	{"Atomic Habits", "Books", "Penguin", 499, "An easy and proven way to build good habits"},
	{"Sapiens", "Books", "HarperCollins", 599, "A brief history of humankind"},
	{"The Alchemist", "Books", "HarperCollins", 350, "A fable about following your dream"},
	{"LEGO Classic Creative Box", "Toys", "LEGO", 2999, "Classic bricks set with 790 pieces"},
	{"Hasbro Monopoly", "Toys", "Hasbro", 1299, "Classic property trading board game"},
	{"LEGO Technic Race Car", "Toys", "LEGO", 14999, "Detailed pull-back race car model"},
	{"Yonex Nanoray Racket", "Sports", "Yonex", 4599, "Lightweight badminton racket for fast swings"},
	{"Cosco Table Tennis Set", "Sports", "Cosco", 1499, "Table tennis racket set with balls"},
	{"Adidas Yoga Mat", "Sports", "Adidas", 2499, "Premium non-slip yoga mat"},
	{"Nike Training Gloves", "Sports", "Nike", 1999, "Weightlifting training gloves"},
	{"Puma Gym Bag", "Sports", "Puma", 2999, "Spacious gym and sports bag"},
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// SeedDemoData populates the store with the demo catalog, an admin
// account, and a handful of orders in assorted lifecycle states so the
// dashboards have something to show. Stock and timestamps are
// deterministic functions of the catalog index.
func (s *MemoryStore) SeedDemoData(adminEmail, adminPassword string) error {
	ctx := context.Background()
	now := time.Now()

	for i, sp := range seedCatalog {
		slug := Slugify(sp.title)
		p := models.Product{
			ID:          fmt.Sprintf("product-%d", i+1),
			Slug:        slug,
			Title:       sp.title,
			Description: sp.desc,
			Category:    sp.category,
			Brand:       sp.brand,
			PriceINR:    sp.price,
			Currency:    "INR",
			Stock:       25 + (i*13)%175,
			Images: []string{
				fmt.Sprintf("https://picsum.photos/seed/%s-1/600/400", slug),
				fmt.Sprintf("https://picsum.photos/seed/%s-2/600/400", slug),
				fmt.Sprintf("https://picsum.photos/seed/%s-3/600/400", slug),
			},
			CreatedAt: now.AddDate(0, 0, -(i*3)%90),
		}
		if err := s.CreateProduct(ctx, &p); err != nil {
			return err
		}
	}

	adminHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:        "admin-1",
		Name:      "Admin",
		Email:     adminEmail,
		Password:  adminHash,
		Role:      models.RoleAdmin,
		CreatedAt: now.AddDate(0, -6, 0),
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		return err
	}

	demoHash, err := utils.HashPassword("demo12345")
	if err != nil {
		return err
	}
	for i := 1; i <= 5; i++ {
		u := models.User{
			ID:        fmt.Sprintf("user-demo-%d", i),
			Name:      fmt.Sprintf("Demo Customer %d", i),
			Email:     fmt.Sprintf("customer%d@example.com", i),
			Password:  demoHash,
			Role:      models.RoleUser,
			CreatedAt: now.AddDate(0, -i, 0),
		}
		if err := s.CreateUser(ctx, &u); err != nil {
			return err
		}
	}

	s.seedDemoOrders(now)
	return nil
}

func (s *MemoryStore) seedDemoOrders(now time.Time) {
	paidAt := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}
	refundedAt := now.AddDate(0, 0, -9)

	demoOrders := []models.Order{
		{
			ID: "order-demo-1", UserID: "user-demo-1", UserEmail: "customer1@example.com",
			Items: []models.OrderItem{
				{ProductID: "product-1", Title: "Samsung Galaxy S24 Ultra", PriceINR: 124999, Qty: 1},
				{ProductID: "product-3", Title: "Sony WH-1000XM5 Headphones", PriceINR: 29990, Qty: 1},
			},
			ShippingAddress: models.ShippingAddress{FullName: "Rahul Sharma", Address: "123 MG Road", City: "Mumbai", State: "Maharashtra", PostalCode: "400001", Phone: "9876543210"},
			PaymentMethod:   "stripe", TotalPriceINR: 154989,
			IsPaid: true, PaidAt: paidAt(2), Status: models.OrderStatusDelivered,
			CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID: "order-demo-2", UserID: "user-demo-2", UserEmail: "customer2@example.com",
			Items: []models.OrderItem{
				{ProductID: "product-5", Title: "Apple MacBook Air M3", PriceINR: 114900, Qty: 1},
			},
			ShippingAddress: models.ShippingAddress{FullName: "Priya Patel", Address: "456 Brigade Road", City: "Bangalore", State: "Karnataka", PostalCode: "560001", Phone: "9876543211"},
			PaymentMethod:   "stripe", TotalPriceINR: 114900,
			IsPaid: true, PaidAt: paidAt(5), Status: models.OrderStatusShipped,
			CreatedAt: now.AddDate(0, 0, -6),
		},
		{
			ID: "order-demo-3", UserID: "user-demo-3", UserEmail: "customer3@example.com",
			Items: []models.OrderItem{
				{ProductID: "product-11", Title: "Prestige Electric Kettle", PriceINR: 1299, Qty: 2},
				{ProductID: "product-12", Title: "Philips Mixer Grinder", PriceINR: 4999, Qty: 1},
			},
			ShippingAddress: models.ShippingAddress{FullName: "Amit Kumar", Address: "789 Park Street", City: "Kolkata", State: "West Bengal", PostalCode: "700016", Phone: "9876543212"},
			PaymentMethod:   "stripe", TotalPriceINR: 7597,
			IsPaid: true, PaidAt: paidAt(1), Status: models.OrderStatusProcessing,
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: "order-demo-4", UserID: "user-demo-4", UserEmail: "customer4@example.com",
			Items: []models.OrderItem{
				{ProductID: "product-16", Title: "Nike Air Max 270", PriceINR: 13995, Qty: 1},
			},
			ShippingAddress: models.ShippingAddress{FullName: "Sneha Reddy", Address: "321 Jubilee Hills", City: "Hyderabad", State: "Telangana", PostalCode: "500033", Phone: "9876543213"},
			PaymentMethod:   "stripe", TotalPriceINR: 13995,
			IsPaid: false, Status: models.OrderStatusPending,
			CreatedAt: now.AddDate(0, 0, -12),
		},
		{
			ID: "order-demo-5", UserID: "user-demo-5", UserEmail: "customer5@example.com",
			Items: []models.OrderItem{
				{ProductID: "product-21", Title: "The Psychology of Money", PriceINR: 399, Qty: 3},
				{ProductID: "product-22", Title: "Atomic Habits", PriceINR: 499, Qty: 2},
			},
			ShippingAddress: models.ShippingAddress{FullName: "Vikram Singh", Address: "567 Connaught Place", City: "Delhi", State: "Delhi", PostalCode: "110001", Phone: "9876543214"},
			PaymentMethod:   "stripe", TotalPriceINR: 2195,
			IsPaid: true, PaidAt: paidAt(10), Status: models.OrderStatusCancelled,
			IsRefunded: true, RefundAmountINR: 2195, RefundReason: "Customer requested cancellation", RefundedAt: &refundedAt,
			CreatedAt: now.AddDate(0, 0, -15),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range demoOrders {
		s.orders[o.ID] = o
	}
}
