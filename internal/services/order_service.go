// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
)

type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, userID *primitive.ObjectID) ([]*models.Order, error)
	Update(ctx context.Context, o *models.Order) error
}

type ProductCatalog interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type OrderService struct {
	orders   OrderStore
	products ProductCatalog
	users    UserDirectory
}

func NewOrderService(orders OrderStore, products ProductCatalog, users UserDirectory) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
	}
}

type CreateOrderRequest struct {
	UserID          string    `json:"userId" validate:"required"`
	Items           LineItems `json:"items"`
	ShippingAddress string    `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	TotalPrice      float64   `json:"totalPrice"`
}

// Create validates the line requests, snapshots unit prices from the catalog
// and persists a new order in created status. Each product lookup and the
// final insert are independent operations; there is no atomicity across them.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	if len(req.Items) == 0 {
		return nil, ErrItemsRequired
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var computed float64
	for _, line := range req.Items {
		if line.ProductID == "" {
			return nil, ErrItemProductRequired
		}
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, &ProductNotFoundError{ID: line.ProductID}
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ProductNotFoundError{ID: line.ProductID}
			}
			return nil, err
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		// The caller's price wins when supplied; otherwise snapshot the
		// current catalog price.
		price := line.Price
		if price <= 0 {
			price = product.Price
		}

		items = append(items, models.OrderItem{
			Product:  productID,
			Quantity: quantity,
			Price:    price,
		})
		computed += float64(quantity) * price
	}

	// An explicit total overrides the computed one verbatim; it is not
	// cross-checked against the items.
	total := computed
	if req.TotalPrice != 0 {
		total = req.TotalPrice
	}

	method := req.PaymentMethod
	if method == "" {
		method = string(PaymentMethodCash)
	}

	order := &models.Order{
		ID:              models.NewID(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   method,
		TotalPrice:      total,
		Status:          models.OrderStatusCreated,
	}
	order.Touch(time.Now())

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID.Hex(),
		"user_id":  req.UserID,
		"items":    len(items),
		"total":    total,
	}).Info("Order created")

	return order, nil
}

// Checkout resolves the settlement strategy for the method, runs it and
// transitions the order: success means paid, pending leaves it created. The
// result is persisted either way. Re-running checkout on a settled order
// overwrites the previous result; there is no idempotency guard.
func (s *OrderService) Checkout(ctx context.Context, orderID, method string) (*models.Order, *models.PaymentResult, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, nil, repository.ErrNotFound
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	paymentMethod, err := ResolvePaymentMethod(method)
	if err != nil {
		return nil, nil, err
	}

	result := paymentMethod.Settle()
	order.PaymentResult = &result
	order.PaymentMethod = string(paymentMethod)
	if result.Status == models.SettlementStatusSuccess {
		order.Status = models.OrderStatusPaid
	} else {
		order.Status = models.OrderStatusCreated
	}
	order.UpdatedAt = time.Now()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   orderID,
		"provider":   result.Provider,
		"settlement": result.Status,
		"status":     order.Status,
	}).Info("Order settled")

	return order, &result, nil
}

// List returns orders newest-first, optionally filtered by owning user, with
// user and product references resolved for display.
func (s *OrderService) List(ctx context.Context, userID string) ([]*models.OrderView, error) {
	var filter *primitive.ObjectID
	if userID != "" {
		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, ErrInvalidUserID
		}
		filter = &id
	}

	orders, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*models.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, s.resolve(ctx, order))
	}
	return views, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*models.OrderView, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, order), nil
}

// UpdateStatus overwrites the status with any value from the enumeration.
// Transitions are deliberately unguarded; this is the administrative escape
// hatch, not a state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// resolve attaches the owning user and per-item products. A reference that
// no longer resolves is tolerated: the snapshot data on the item stands on
// its own.
func (s *OrderService) resolve(ctx context.Context, order *models.Order) *models.OrderView {
	view := &models.OrderView{Order: *order}
	if user, err := s.users.FindByID(ctx, order.UserID); err == nil {
		view.User = user
	}
	view.Items = make([]models.OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		itemView := models.OrderItemView{OrderItem: item}
		if product, err := s.products.FindByID(ctx, item.Product); err == nil {
			itemView.Product = product
		}
		view.Items = append(view.Items, itemView)
	}
	return view
}
