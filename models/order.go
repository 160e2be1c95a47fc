package models

import (
	"errors"
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var (
	ErrNotPaid             = errors.New("order is not paid")
	ErrAlreadyRefunded     = errors.New("order is already refunded")
	ErrInvalidRefundAmount = errors.New("refund amount must be greater than zero")
	ErrRefundExceedsTotal  = errors.New("refund amount exceeds order total")
	ErrInvalidStatus       = errors.New("unknown order status")
)

type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Title     string `json:"title" bson:"title"`
	PriceINR  int    `json:"price_inr" bson:"price_inr"`
	Qty       int    `json:"qty" bson:"qty"`
}

type ShippingAddress struct {
	FullName   string `json:"full_name" bson:"full_name"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Phone      string `json:"phone" bson:"phone"`
}

type PaymentResult struct {
	ID         string `json:"id" bson:"id"`
	Status     string `json:"status" bson:"status"`
	UpdateTime string `json:"update_time" bson:"update_time"`
}

type Order struct {
	ID              string          `json:"id" bson:"_id"`
	UserID          string          `json:"user_id" bson:"user_id"`
	UserEmail       string          `json:"user_email" bson:"user_email"`
	Items           []OrderItem     `json:"items" bson:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   string          `json:"payment_method" bson:"payment_method"`
	TotalPriceINR   int             `json:"total_price_inr" bson:"total_price_inr"`
	IsPaid          bool            `json:"is_paid" bson:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	Status          string          `json:"status" bson:"status"`
	PaymentResult   *PaymentResult  `json:"payment_result,omitempty" bson:"payment_result,omitempty"`
	IsRefunded      bool            `json:"is_refunded" bson:"is_refunded"`
	RefundAmountINR int             `json:"refund_amount_inr,omitempty" bson:"refund_amount_inr,omitempty"`
	RefundReason    string          `json:"refund_reason,omitempty" bson:"refund_reason,omitempty"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty" bson:"refunded_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// MarkPaid records a successful payment and moves the order to processing.
// Calling it on an already-paid order is a no-op and reports false, so the
// payment result is never overwritten and the status is not touched twice.
func (o *Order) MarkPaid(result PaymentResult, at time.Time) bool {
	if o.IsPaid {
		return false
	}
	o.IsPaid = true
	o.PaidAt = &at
	o.Status = OrderStatusProcessing
	o.PaymentResult = &result
	return true
}

// ApplyRefund records a refund against a paid order and forces the status
// to cancelled. The invariants live here so they hold for every caller:
// the order must be paid, must not already be refunded, and the amount
// must be positive and no greater than the order total.
func (o *Order) ApplyRefund(amountINR int, reason string, at time.Time) error {
	if !o.IsPaid {
		return ErrNotPaid
	}
	if o.IsRefunded {
		return ErrAlreadyRefunded
	}
	if amountINR <= 0 {
		return ErrInvalidRefundAmount
	}
	if amountINR > o.TotalPriceINR {
		return ErrRefundExceedsTotal
	}
	o.IsRefunded = true
	o.RefundAmountINR = amountINR
	o.RefundReason = reason
	o.RefundedAt = &at
	o.Status = OrderStatusCancelled
	return nil
}

func (o *Order) SetStatus(status string) error {
	if !ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}
