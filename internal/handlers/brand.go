// internal/handlers/brand.go
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

type BrandService interface {
	Create(ctx context.Context, req *services.CreateBrandRequest) (*models.Brand, error)
	List(ctx context.Context) ([]*models.Brand, error)
	Get(ctx context.Context, id string) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	Update(ctx context.Context, id string, req *services.UpdateBrandRequest) (*models.Brand, error)
	Delete(ctx context.Context, id string) error
}

type BrandHandler struct {
	brands BrandService
}

func NewBrandHandler(brands BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// POST /api/brands (admin)
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.brands.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateBrand) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, brand)
}

// GET /api/brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, brands)
}

// GET /api/brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	brand, err := h.brands.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, brand)
}

// GET /api/brands/slug/:slug
func (h *BrandHandler) GetBrandBySlug(c *gin.Context) {
	brand, err := h.brands.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, brand)
}

// PUT /api/brands/:id (admin)
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	brand, err := h.brands.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "Brand")
		case errors.Is(err, services.ErrDuplicateBrand):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}
	utils.SuccessResponse(c, brand)
}

// DELETE /api/brands/:id (admin)
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Brand deleted"})
}
