// internal/services/product_service.go
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
	"github.com/openshop/storefront-backend/internal/utils"
)

type ProductService struct {
	products *repository.Products
}

func NewProductService(products *repository.Products) *ProductService {
	return &ProductService{products: products}
}

// ProductInput carries the parsed multipart form for a create. Image is the
// stored filename of an already-saved upload, if any.
type ProductInput struct {
	Title       string  `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Brand       string
	Stock       int `validate:"gte=0"`
	Category    string
	Image       string
}

// ProductUpdate applies only the fields present in the form. A new image is
// appended to the existing list, never a replacement.
type ProductUpdate struct {
	Title       *string
	Description *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Brand       *string
	Stock       *int `validate:"omitempty,gte=0"`
	Category    *string
	Image       string
}

func (s *ProductService) Create(ctx context.Context, in *ProductInput) (*models.Product, error) {
	images := []string{}
	if in.Image != "" {
		images = append(images, in.Image)
	}

	product := &models.Product{
		ID:          models.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Brand:       in.Brand,
		Stock:       in.Stock,
		Category:    in.Category,
		Images:      images,
	}
	product.Touch(time.Now())

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, params utils.PaginationParams) ([]*models.Product, int64, error) {
	return s.products.Find(ctx, params)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.products.FindByID(ctx, productID)
}

func (s *ProductService) Update(ctx context.Context, id string, in *ProductUpdate) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Image != "" {
		product.Images = append(product.Images, in.Image)
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	// Orders referencing this product keep their snapshot items; there is
	// no cascade.
	return s.products.Delete(ctx, productID)
}
