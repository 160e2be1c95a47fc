package controllers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// GetMyOrders godoc
// @Summary My orders
// @Description Orders of the authenticated user, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := ctrl.orders.ListForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetOrder godoc
// @Summary Get order
// @Description Order details, visible to its owner and to admins
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	if order.UserID != c.GetString("user_id") && c.GetString("user_role") != models.RoleAdmin {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// GetAllOrders godoc
// @Summary List all orders
// @Description All orders with pagination and optional status filter (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !models.ValidOrderStatus(status) {
		c.JSON(400, gin.H{"success": false, "message": "Unknown order status"})
		return
	}

	orders, total, err := ctrl.orders.ListAll(c.Request.Context(), status, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list orders"})
		return
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrderByID godoc
// @Summary Get order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set one of pending, processing, shipped, delivered, cancelled (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(400, gin.H{"success": false, "message": "Unknown order status"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully", "data": order})
}

// RefundOrder godoc
// @Summary Refund order
// @Description Record a refund against a paid order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.RefundRequest true "Refund amount and reason"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/refund [put]
func (ctrl *OrderController) RefundOrder(c *gin.Context) {
	var req models.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid refund amount"})
		return
	}

	order, err := ctrl.orders.Refund(c.Request.Context(), c.Param("id"), req.AmountINR, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, models.ErrNotPaid),
			errors.Is(err, models.ErrAlreadyRefunded),
			errors.Is(err, models.ErrInvalidRefundAmount),
			errors.Is(err, models.ErrRefundExceedsTotal):
			c.JSON(400, gin.H{"success": false, "message": "Refund rejected", "error": err.Error()})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to process refund"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Refund recorded", "data": order})
}

// DeleteOrder godoc
// @Summary Delete order
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	if err := ctrl.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully"})
}
