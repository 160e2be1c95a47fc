package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

type fakeVerifier struct {
	event stripe.Event
	err   error
}

func (f *fakeVerifier) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if f.err != nil {
		return stripe.Event{}, f.err
	}
	return f.event, nil
}

func completedEvent(t *testing.T, orderID string) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"id":             "cs_test_1",
		"payment_status": "paid",
		"metadata":       map[string]string{"order_id": orderID},
	})
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func webhookFixture(t *testing.T, verifier WebhookVerifier) (*gin.Engine, *repositories.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	p := models.Product{ID: "p1", Slug: "wireless-earbuds", Title: "Wireless Earbuds", PriceINR: 2999, Stock: 10, CreatedAt: time.Now()}
	if err := store.CreateProduct(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	order := &models.Order{
		ID:            "order-1",
		UserID:        "u1",
		UserEmail:     "shopper@example.com",
		Items:         []models.OrderItem{{ProductID: "p1", Qty: 1, PriceINR: 2999}},
		TotalPriceINR: 2999,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := store.PlaceOrder(context.Background(), order); err != nil {
		t.Fatalf("place order: %v", err)
	}

	ctrl := NewCheckoutController(nil, services.NewOrderService(store), verifier, nil)
	router := gin.New()
	router.POST("/webhooks/stripe", ctrl.StripeWebhook)
	return router, store
}

func postWebhook(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader("{}"))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	router.ServeHTTP(w, req)
	return w
}

func TestStripeWebhookMarksOrderPaid(t *testing.T) {
	verifier := &fakeVerifier{event: completedEvent(t, "order-1")}
	router, store := webhookFixture(t, verifier)

	if w := postWebhook(router); w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	order, err := store.GetOrderByID(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if !order.IsPaid || order.Status != models.OrderStatusProcessing {
		t.Errorf("order after webhook: paid=%v status=%q", order.IsPaid, order.Status)
	}
	if order.PaymentResult == nil || order.PaymentResult.ID != "cs_test_1" || order.PaymentResult.Status != "paid" {
		t.Errorf("payment result not recorded: %+v", order.PaymentResult)
	}

	// A redelivered event succeeds but must leave the order untouched.
	verifier.event = completedEvent(t, "order-1")
	verifier.event.Data.Raw = []byte(`{"id":"cs_test_other","payment_status":"paid","metadata":{"order_id":"order-1"}}`)
	if w := postWebhook(router); w.Code != http.StatusOK {
		t.Fatalf("replay status %d", w.Code)
	}
	order, _ = store.GetOrderByID(context.Background(), "order-1")
	if order.PaymentResult.ID != "cs_test_1" {
		t.Errorf("payment result overwritten on replay: %q", order.PaymentResult.ID)
	}
}

func TestStripeWebhookIgnoresOtherEvents(t *testing.T) {
	event := completedEvent(t, "order-1")
	event.Type = "payment_intent.succeeded"
	router, store := webhookFixture(t, &fakeVerifier{event: event})

	if w := postWebhook(router); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	order, _ := store.GetOrderByID(context.Background(), "order-1")
	if order.IsPaid {
		t.Error("unrelated event type marked the order paid")
	}
}

func TestStripeWebhookRejectsBadRequests(t *testing.T) {
	// Failed signature verification.
	router, _ := webhookFixture(t, &fakeVerifier{err: errors.New("signature mismatch")})
	if w := postWebhook(router); w.Code != http.StatusBadRequest {
		t.Errorf("bad signature: status %d, want 400", w.Code)
	}

	// Session without an order reference.
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: []byte(`{"id":"cs_test_1","payment_status":"paid"}`)},
	}
	router, store := webhookFixture(t, &fakeVerifier{event: event})
	if w := postWebhook(router); w.Code != http.StatusBadRequest {
		t.Errorf("missing order id: status %d, want 400", w.Code)
	}
	order, _ := store.GetOrderByID(context.Background(), "order-1")
	if order.IsPaid {
		t.Error("event without order id marked the order paid")
	}

	// Order id that does not exist.
	router, _ = webhookFixture(t, &fakeVerifier{event: completedEvent(t, "ghost")})
	if w := postWebhook(router); w.Code != http.StatusNotFound {
		t.Errorf("unknown order: status %d, want 404", w.Code)
	}
}

func TestStripeWebhookWithoutVerifier(t *testing.T) {
	router, _ := webhookFixture(t, nil)
	if w := postWebhook(router); w.Code != http.StatusServiceUnavailable {
		t.Errorf("no verifier: status %d, want 503", w.Code)
	}
}
