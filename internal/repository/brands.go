// internal/repository/brands.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openshop/storefront-backend/internal/models"
)

type Brands struct {
	c *mongo.Collection
}

func NewBrands(db *mongo.Database) *Brands {
	return &Brands{c: db.Collection("brands")}
}

func (r *Brands) Insert(ctx context.Context, b *models.Brand) error {
	_, err := r.c.InsertOne(ctx, b)
	return wrapErr(err)
}

func (r *Brands) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var b models.Brand
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, wrapErr(err)
	}
	return &b, nil
}

// FindBySlug only matches active brands; inactive ones are hidden from the
// public slug lookup.
func (r *Brands) FindBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var b models.Brand
	if err := r.c.FindOne(ctx, bson.M{"slug": slug, "isActive": true}).Decode(&b); err != nil {
		return nil, wrapErr(err)
	}
	return &b, nil
}

func (r *Brands) FindActive(ctx context.Context) ([]*models.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var brands []*models.Brand
	if err := cur.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *Brands) Update(ctx context.Context, b *models.Brand) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Brands) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
