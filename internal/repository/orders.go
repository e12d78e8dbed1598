// internal/repository/orders.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openshop/storefront-backend/internal/models"
)

type Orders struct {
	c *mongo.Collection
}

func NewOrders(db *mongo.Database) *Orders {
	return &Orders{c: db.Collection("orders")}
}

func (r *Orders) Insert(ctx context.Context, o *models.Order) error {
	_, err := r.c.InsertOne(ctx, o)
	return wrapErr(err)
}

func (r *Orders) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var o models.Order
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, wrapErr(err)
	}
	return &o, nil
}

// Find returns orders newest-first, optionally filtered by owning user.
func (r *Orders) Find(ctx context.Context, userID *primitive.ObjectID) ([]*models.Order, error) {
	filter := bson.M{}
	if userID != nil {
		filter["user"] = *userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var orders []*models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Orders) Update(ctx context.Context, o *models.Order) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
