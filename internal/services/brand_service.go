// internal/services/brand_service.go
package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
)

type BrandService struct {
	brands *repository.Brands
}

func NewBrandService(brands *repository.Brands) *BrandService {
	return &BrandService{brands: brands}
}

type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	IsActive    *bool   `json:"isActive"`
}

func (s *BrandService) Create(ctx context.Context, req *CreateBrandRequest) (*models.Brand, error) {
	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}

	brand := &models.Brand{
		ID:          models.NewID(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Logo:        req.Logo,
		IsActive:    true,
	}
	brand.Touch(time.Now())

	if err := s.brands.Insert(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateBrand
		}
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) List(ctx context.Context) ([]*models.Brand, error) {
	return s.brands.FindActive(ctx)
}

func (s *BrandService) Get(ctx context.Context, id string) (*models.Brand, error) {
	brandID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.brands.FindByID(ctx, brandID)
}

func (s *BrandService) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	return s.brands.FindBySlug(ctx, slug)
}

func (s *BrandService) Update(ctx context.Context, id string, req *UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		brand.Name = *req.Name
		// A renamed brand gets a fresh slug unless one is supplied.
		if req.Slug == nil {
			brand.Slug = models.Slugify(*req.Name)
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		brand.Slug = *req.Slug
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}
	brand.UpdatedAt = time.Now()

	if err := s.brands.Update(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateBrand
		}
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	brandID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	return s.brands.Delete(ctx, brandID)
}
