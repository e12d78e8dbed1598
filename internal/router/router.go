// internal/router/router.go
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openshop/storefront-backend/internal/config"
	"github.com/openshop/storefront-backend/internal/handlers"
	"github.com/openshop/storefront-backend/internal/middleware"
	"github.com/openshop/storefront-backend/internal/repository"
	"github.com/openshop/storefront-backend/internal/services"
	"github.com/openshop/storefront-backend/internal/utils"
)

func Initialize(client *mongo.Client, db *mongo.Database, cfg *config.Config) *gin.Engine {
	// Repositories
	users := repository.NewUsers(db)
	products := repository.NewProducts(db)
	brands := repository.NewBrands(db)
	orders := repository.NewOrders(db)

	// Services
	authService := services.NewAuthService(users, cfg)
	userService := services.NewUserService(users)
	productService := services.NewProductService(products)
	brandService := services.NewBrandService(brands)
	orderService := services.NewOrderService(orders, products, users)
	storageService := services.NewStorageService(cfg.Upload)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	brandHandler := handlers.NewBrandHandler(brandService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())

	// Uploaded product images
	r.Static("/uploads", cfg.Upload.Dir)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(client))

		// User routes (registration/login plus unguarded CRUD)
		userRoutes := api.Group("/users")
		{
			userRoutes.POST("/register", authHandler.Register)
			userRoutes.POST("/login", authHandler.Login)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUser)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}

		// Product routes (public reads, admin mutation)
		productRoutes := api.Group("/products")
		{
			productRoutes.GET("", productHandler.GetProducts)
			productRoutes.GET("/:id", productHandler.GetProduct)

			protected := productRoutes.Group("")
			protected.Use(middleware.AuthRequired(users), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Brand routes (public reads, admin mutation)
		brandRoutes := api.Group("/brands")
		{
			brandRoutes.GET("", brandHandler.GetBrands)
			brandRoutes.GET("/:id", brandHandler.GetBrand)
			brandRoutes.GET("/slug/:slug", brandHandler.GetBrandBySlug)

			protected := brandRoutes.Group("")
			protected.Use(middleware.AuthRequired(users), middleware.AdminRequired())
			{
				protected.POST("", brandHandler.CreateBrand)
				protected.PUT("/:id", brandHandler.UpdateBrand)
				protected.DELETE("/:id", brandHandler.DeleteBrand)
			}
		}

		// Order routes
		orderRoutes := api.Group("/orders")
		{
			orderRoutes.POST("", orderHandler.CreateOrder)
			orderRoutes.POST("/checkout", orderHandler.Checkout)
			orderRoutes.GET("", orderHandler.GetOrders)
			orderRoutes.GET("/:id", orderHandler.GetOrder)
			orderRoutes.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}
	}

	return r
}
