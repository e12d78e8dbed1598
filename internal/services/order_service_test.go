// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
)

type stubOrderStore struct {
	inserted *models.Order
	updated  *models.Order
	orders   map[primitive.ObjectID]*models.Order
}

func (s *stubOrderStore) Insert(_ context.Context, o *models.Order) error {
	s.inserted = o
	return nil
}

func (s *stubOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubOrderStore) Find(_ context.Context, userID *primitive.ObjectID) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range s.orders {
		if userID == nil || o.UserID == *userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) Update(_ context.Context, o *models.Order) error {
	s.updated = o
	return nil
}

type stubCatalog map[primitive.ObjectID]*models.Product

func (c stubCatalog) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := c[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

type stubUsers map[primitive.ObjectID]*models.User

func (u stubUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func newOrderFixture() (*OrderService, *stubOrderStore, *models.User, *models.Product, *models.Product) {
	user := &models.User{ID: models.NewID(), Name: "Alice"}
	widget := &models.Product{ID: models.NewID(), Title: "Widget", Price: 10}
	gadget := &models.Product{ID: models.NewID(), Title: "Gadget", Price: 5}

	store := &stubOrderStore{orders: map[primitive.ObjectID]*models.Order{}}
	svc := NewOrderService(
		store,
		stubCatalog{widget.ID: widget, gadget.ID: gadget},
		stubUsers{user.ID: user},
	)
	return svc, store, user, widget, gadget
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, store, user, widget, gadget := newOrderFixture()

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		UserID: user.ID.Hex(),
		Items: LineItems{
			{ProductID: widget.ID.Hex(), Quantity: 2, Price: 10},
			{ProductID: gadget.ID.Hex(), Quantity: 1, Price: 5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, "cash", order.PaymentMethod)
	require.NotNil(t, store.inserted)
	assert.Equal(t, order.ID, store.inserted.ID)
}

func TestCreateOrderExplicitTotalWins(t *testing.T) {
	svc, _, user, widget, _ := newOrderFixture()

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		UserID: user.ID.Hex(),
		Items: LineItems{
			{ProductID: widget.ID.Hex(), Quantity: 2, Price: 10},
		},
		TotalPrice: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, 999.0, order.TotalPrice)
}

func TestCreateOrderDefaultsQuantityAndSnapshotsPrice(t *testing.T) {
	svc, _, user, widget, _ := newOrderFixture()

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		UserID: user.ID.Hex(),
		Items: LineItems{
			{ProductID: widget.ID.Hex()},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, widget.Price, order.Items[0].Price)
	assert.Equal(t, widget.Price, order.TotalPrice)
}

func TestCreateOrderUnknownProductRejectsWholeOrder(t *testing.T) {
	svc, store, user, widget, _ := newOrderFixture()
	missing := models.NewID().Hex()

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		UserID: user.ID.Hex(),
		Items: LineItems{
			{ProductID: widget.ID.Hex(), Quantity: 1},
			{ProductID: missing, Quantity: 1},
		},
	})

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.ID)
	assert.Nil(t, store.inserted, "nothing should be persisted")
}

func TestCreateOrderRequiresItems(t *testing.T) {
	svc, _, user, _, _ := newOrderFixture()

	_, err := svc.Create(context.Background(), &CreateOrderRequest{UserID: user.ID.Hex()})
	assert.ErrorIs(t, err, ErrItemsRequired)

	_, err = svc.Create(context.Background(), &CreateOrderRequest{
		UserID: "not-a-hex-id",
		Items:  LineItems{{ProductID: "whatever"}},
	})
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestCheckoutStripeMarksOrderPaid(t *testing.T) {
	svc, store, user, _, _ := newOrderFixture()
	order := &models.Order{ID: models.NewID(), UserID: user.ID, Status: models.OrderStatusCreated}
	store.orders[order.ID] = order

	updated, result, err := svc.Checkout(context.Background(), order.ID.Hex(), "stripe")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPaid, updated.Status)
	assert.Equal(t, models.SettlementStatusSuccess, result.Status)
	assert.Equal(t, "stripe", result.Provider)
	require.NotNil(t, store.updated)
	require.NotNil(t, store.updated.PaymentResult)
	assert.Equal(t, result.ID, store.updated.PaymentResult.ID)
}

func TestCheckoutCashLeavesOrderCreated(t *testing.T) {
	svc, store, user, _, _ := newOrderFixture()
	order := &models.Order{ID: models.NewID(), UserID: user.ID, Status: models.OrderStatusCreated}
	store.orders[order.ID] = order

	updated, result, err := svc.Checkout(context.Background(), order.ID.Hex(), "cash")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCreated, updated.Status)
	assert.Equal(t, models.SettlementStatusPending, result.Status)
	require.NotNil(t, store.updated, "pending result is still persisted")
}

func TestCheckoutUnknownMethodLeavesOrderUntouched(t *testing.T) {
	svc, store, user, _, _ := newOrderFixture()
	order := &models.Order{ID: models.NewID(), UserID: user.ID, Status: models.OrderStatusCreated}
	store.orders[order.ID] = order

	_, _, err := svc.Checkout(context.Background(), order.ID.Hex(), "bitcoin")
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
	assert.Nil(t, store.updated)
	assert.Nil(t, order.PaymentResult)
}

func TestCheckoutMissingOrder(t *testing.T) {
	svc, _, _, _, _ := newOrderFixture()

	_, _, err := svc.Checkout(context.Background(), models.NewID().Hex(), "stripe")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, _, err = svc.Checkout(context.Background(), "not-a-hex-id", "stripe")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListResolvesUserAndProducts(t *testing.T) {
	svc, store, user, widget, _ := newOrderFixture()
	order := &models.Order{
		ID:     models.NewID(),
		UserID: user.ID,
		Items:  []models.OrderItem{{Product: widget.ID, Quantity: 1, Price: 10}},
		Status: models.OrderStatusCreated,
	}
	store.orders[order.ID] = order

	views, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, views, 1)

	require.NotNil(t, views[0].User)
	assert.Equal(t, "Alice", views[0].User.Name)
	require.Len(t, views[0].Items, 1)
	require.NotNil(t, views[0].Items[0].Product)
	assert.Equal(t, "Widget", views[0].Items[0].Product.Title)
}

func TestListToleratesBrokenProductRef(t *testing.T) {
	svc, store, user, _, _ := newOrderFixture()
	order := &models.Order{
		ID:     models.NewID(),
		UserID: user.ID,
		Items:  []models.OrderItem{{Product: models.NewID(), Quantity: 1, Price: 10}},
	}
	store.orders[order.ID] = order

	views, err := svc.List(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)
	assert.Nil(t, views[0].Items[0].Product)
	assert.Equal(t, 10.0, views[0].Items[0].Price)
}

func TestListRejectsInvalidUserFilter(t *testing.T) {
	svc, _, _, _, _ := newOrderFixture()

	_, err := svc.List(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestUpdateStatus(t *testing.T) {
	svc, store, user, _, _ := newOrderFixture()
	order := &models.Order{ID: models.NewID(), UserID: user.ID, Status: models.OrderStatusCreated}
	store.orders[order.ID] = order

	updated, err := svc.UpdateStatus(context.Background(), order.ID.Hex(), "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	// Backwards transitions are allowed on purpose.
	updated, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), "created")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), "delivered")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
