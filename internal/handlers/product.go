// internal/handlers/product.go
package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
	"github.com/openshop/storefront-backend/internal/services"
	"github.com/openshop/storefront-backend/internal/utils"
)

type ProductService interface {
	Create(ctx context.Context, in *services.ProductInput) (*models.Product, error)
	List(ctx context.Context, params utils.PaginationParams) ([]*models.Product, int64, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, in *services.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ImageStore interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (*services.UploadResult, error)
}

type ProductHandler struct {
	products ProductService
	storage  ImageStore
}

func NewProductHandler(products ProductService, storage ImageStore) *ProductHandler {
	return &ProductHandler{products: products, storage: storage}
}

// saveUploadedImage stores the optional "image" form file and returns its
// stored filename, or "" when the request carries no file.
func (h *ProductHandler) saveUploadedImage(c *gin.Context) (string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	res, err := h.storage.SaveImage(file, header)
	if err != nil {
		return "", err
	}
	return res.Filename, nil
}

// POST /api/products (admin, multipart form)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	title := c.PostForm("title")
	priceStr, hasPrice := c.GetPostForm("price")
	if title == "" || !hasPrice {
		utils.BadRequestResponse(c, "title and price are required", nil)
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		utils.BadRequestResponse(c, "price must be a number", nil)
		return
	}

	stock := 0
	if v, ok := c.GetPostForm("stock"); ok && v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil {
			utils.BadRequestResponse(c, "stock must be an integer", nil)
			return
		}
	}

	in := &services.ProductInput{
		Title:       title,
		Description: c.PostForm("description"),
		Price:       price,
		Brand:       c.PostForm("brand"),
		Stock:       stock,
		Category:    c.PostForm("category"),
	}
	if in.Image, err = h.saveUploadedImage(c); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(in)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, product)
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.products.List(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if params.Limit > 0 {
		utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params))
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, product)
}

// PUT /api/products/:id (admin, multipart form, partial)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	in := &services.ProductUpdate{}
	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.BadRequestResponse(c, "price must be a number", nil)
			return
		}
		in.Price = &price
	}
	if v, ok := c.GetPostForm("brand"); ok {
		in.Brand = &v
	}
	if v, ok := c.GetPostForm("stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil {
			utils.BadRequestResponse(c, "stock must be an integer", nil)
			return
		}
		in.Stock = &stock
	}
	if v, ok := c.GetPostForm("category"); ok {
		in.Category = &v
	}

	filename, err := h.saveUploadedImage(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	in.Image = filename

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}
