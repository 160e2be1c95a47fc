package models

type SalesByDay struct {
	Date          string `json:"date"`
	TotalSalesINR int    `json:"total_sales_inr"`
	ReturnsINR    int    `json:"returns_inr"`
	OrderCount    int    `json:"order_count"`
}

type OrdersByStatus struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

type AdminStats struct {
	TotalRevenueINR  int            `json:"total_revenue_inr"`
	TotalProducts    int            `json:"total_products"`
	TotalOrders      int            `json:"total_orders"`
	TotalUsers       int            `json:"total_users"`
	ReturnsAmountINR int            `json:"returns_amount_inr"`
	OrdersByStatus   OrdersByStatus `json:"orders_by_status"`
	SalesByDay       []SalesByDay   `json:"sales_by_day"`
}

type RevenueBucket struct {
	Label      string `json:"label"`
	Date       string `json:"date,omitempty"`
	RevenueINR int    `json:"revenue_inr"`
	Orders     int    `json:"orders"`
}

type RevenueReport struct {
	TotalRevenueINR int             `json:"total_revenue_inr"`
	ProfitINR       int             `json:"profit_inr"`
	Daily           []RevenueBucket `json:"daily_revenue"`
	Weekly          []RevenueBucket `json:"weekly_revenue"`
	Monthly         []RevenueBucket `json:"monthly_revenue"`
}

type UserCountBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type UsersReport struct {
	TotalUsers      int               `json:"total_users"`
	NewUsersByMonth []UserCountBucket `json:"new_users_by_month"`
	Users           []User            `json:"users"`
}

type RefundBucket struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	AmountINR int    `json:"amount_inr"`
	Count     int    `json:"count"`
}

type RefundsReport struct {
	TotalRefundedINR int            `json:"total_refunded_inr"`
	TotalReturns     int            `json:"total_returns"`
	RefundTrend      []RefundBucket `json:"refund_trend"`
	RefundReasons    map[string]int `json:"refund_reasons"`
}
