// internal/models/product.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Brand       string             `bson:"brand" json:"brand"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	// Images accumulates; uploads append, they never replace.
	Images     []string `bson:"images" json:"images"`
	Timestamps `bson:",inline"`
}
