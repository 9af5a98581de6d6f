// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hangar/internal/delivery/http/middleware"
	"hangar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ManufacturerHandler *handler.ManufacturerHandler
	ModelHandler        *handler.ModelHandler
	CollectionHandler   *handler.CollectionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	manufacturerHandler *handler.ManufacturerHandler
	modelHandler        *handler.ModelHandler
	collectionHandler   *handler.CollectionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		manufacturerHandler: params.ManufacturerHandler,
		modelHandler:        params.ModelHandler,
		collectionHandler:   params.CollectionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// User routes that require authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.authHandler.GetProfile)
		userGroup.GET("/favorites", r.collectionHandler.ListFavorites)
		userGroup.GET("/purchases", r.collectionHandler.ListPurchases)
	}

	// Manufacturer catalog routes
	manufacturerGroup := api.Group("/manufacturers")
	manufacturerGroup.Use(r.authMiddleware.Authenticate)
	{
		manufacturerGroup.GET("", r.manufacturerHandler.List)
		manufacturerGroup.POST("", r.manufacturerHandler.Create)
		manufacturerGroup.GET("/:id", r.manufacturerHandler.Get)
		manufacturerGroup.PUT("/:id", r.manufacturerHandler.Update)
		manufacturerGroup.DELETE("/:id", r.manufacturerHandler.Delete)
	}

	// Model catalog routes, including price history and collection toggles
	modelGroup := api.Group("/models")
	modelGroup.Use(r.authMiddleware.Authenticate)
	{
		modelGroup.GET("", r.modelHandler.List)
		modelGroup.POST("", r.modelHandler.Create)
		modelGroup.GET("/:id", r.modelHandler.Get)
		modelGroup.PUT("/:id", r.modelHandler.Update)
		modelGroup.DELETE("/:id", r.modelHandler.Delete)
		modelGroup.GET("/:id/variants", r.modelHandler.ListVariants)
		modelGroup.GET("/:id/prices", r.modelHandler.ListPrices)
		modelGroup.POST("/:id/prices", r.modelHandler.AddPrice)
		modelGroup.DELETE("/:id/prices/:priceId", r.modelHandler.DeletePrice)
		modelGroup.POST("/:id/favorite", r.collectionHandler.ToggleFavorite)
		modelGroup.POST("/:id/purchase", r.collectionHandler.TogglePurchase)
	}
}
