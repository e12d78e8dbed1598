// internal/repository/products.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/utils"
)

type Products struct {
	c *mongo.Collection
}

func NewProducts(db *mongo.Database) *Products {
	return &Products{c: db.Collection("products")}
}

func (r *Products) Insert(ctx context.Context, p *models.Product) error {
	_, err := r.c.InsertOne(ctx, p)
	return wrapErr(err)
}

func (r *Products) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, wrapErr(err)
	}
	return &p, nil
}

func (r *Products) Find(ctx context.Context, params utils.PaginationParams) ([]*models.Product, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if params.Category != "" {
		filter["category"] = params.Category
	}

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	opts := params.FindOptions([]string{"createdAt", "title", "price", "stock"})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	defer cur.Close(ctx)

	var products []*models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Products) Update(ctx context.Context, p *models.Product) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Products) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
