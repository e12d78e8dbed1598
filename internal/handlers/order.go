// internal/handlers/order.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
	"github.com/openshop/storefront-backend/internal/services"
	"github.com/openshop/storefront-backend/internal/utils"
)

type OrderService interface {
	Create(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error)
	Checkout(ctx context.Context, orderID, method string) (*models.Order, *models.PaymentResult, error)
	List(ctx context.Context, userID string) ([]*models.OrderView, error)
	Get(ctx context.Context, orderID string) (*models.OrderView, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}

type OrderHandler struct {
	orders OrderService
}

func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type CheckoutRequest struct {
	OrderID       string `json:"orderId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Includes rejected item-list shapes from the LineItems decoder.
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		// Every create failure is a rejected request: bad input, an
		// unresolved product or a persistence-layer validation error.
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.CreatedResponse(c, order)
}

// POST /api/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if req.OrderID == "" || req.PaymentMethod == "" {
		utils.BadRequestResponse(c, "orderId and paymentMethod are required", nil)
		return
	}

	order, result, err := h.orders.Checkout(c.Request.Context(), req.OrderID, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order":   order,
		"payment": result,
	})
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), c.Query("userId"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidUserID) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, order)
}

// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if req.Status == "" {
		utils.BadRequestResponse(c, "status is required", nil)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "Order")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}
	utils.SuccessResponse(c, order)
}
