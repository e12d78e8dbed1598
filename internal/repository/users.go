// internal/repository/users.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openshop/storefront-backend/internal/models"
)

type Users struct {
	c *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{c: db.Collection("users")}
}

func (r *Users) Insert(ctx context.Context, u *models.User) error {
	_, err := r.c.InsertOne(ctx, u)
	return wrapErr(err)
}

func (r *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (r *Users) FindAll(ctx context.Context) ([]*models.User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Users) Update(ctx context.Context, u *models.User) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Users) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
