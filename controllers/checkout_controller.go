package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

const maxWebhookBody = 64 * 1024

// WebhookVerifier authenticates an incoming payment event against the
// endpoint secret. Implemented by libs.StripeProvider.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

type CheckoutController struct {
	checkout *services.CheckoutService
	orders   *services.OrderService
	verifier WebhookVerifier
	mailer   *models.EmailService
}

func NewCheckoutController(checkout *services.CheckoutService, orders *services.OrderService, verifier WebhookVerifier, mailer *models.EmailService) *CheckoutController {
	return &CheckoutController{checkout: checkout, orders: orders, verifier: verifier, mailer: mailer}
}

// Checkout godoc
// @Summary Start checkout
// @Description Validate the cart, create a pending order, and open a payment session
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Cart items and shipping address"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.checkout.Checkout(c.Request.Context(), c.GetString("user_id"), c.GetString("user_email"), req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound),
			errors.Is(err, repositories.ErrInsufficientStock):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrPaymentsNotConfigured):
			c.JSON(503, gin.H{"success": false, "message": "Payments are not available"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to create checkout session", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Checkout session created", "data": resp})
}

// StripeWebhook godoc
// @Summary Stripe webhook
// @Description Signature-verified payment events; the only path that marks an order paid
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /webhooks/stripe [post]
func (ctrl *CheckoutController) StripeWebhook(c *gin.Context) {
	if ctrl.verifier == nil {
		c.JSON(503, gin.H{"success": false, "message": "Payments are not available"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to read payload"})
		return
	}

	event, err := ctrl.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid webhook signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(200, gin.H{"success": true, "message": "Event ignored"})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Malformed event payload"})
		return
	}

	orderID := session.Metadata["order_id"]
	if orderID == "" {
		c.JSON(400, gin.H{"success": false, "message": "Event is missing the order reference"})
		return
	}

	result := models.PaymentResult{
		ID:         session.ID,
		Status:     string(session.PaymentStatus),
		UpdateTime: time.Now().UTC().Format(time.RFC3339),
	}

	order, newlyPaid, err := ctrl.orders.MarkPaid(c.Request.Context(), orderID, result)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}

	if newlyPaid && ctrl.mailer != nil {
		go func(email, id string, total int) {
			if err := ctrl.mailer.SendOrderConfirmationEmail(email, id, total); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}(order.UserEmail, order.ID, order.TotalPriceINR)
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment recorded"})
}
