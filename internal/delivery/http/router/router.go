// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campusmarket/internal/delivery/http/middleware"
	"campusmarket/internal/delivery/http/router/handler"
	"campusmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	DashboardHandler *handler.DashboardHandler
	CatalogHandler   *handler.CatalogHandler
	ProfileHandler   *handler.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	dashboardHandler *handler.DashboardHandler
	catalogHandler   *handler.CatalogHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:     params.OrderHandler,
		paymentHandler:   params.PaymentHandler,
		dashboardHandler: params.DashboardHandler,
		catalogHandler:   params.CatalogHandler,
		profileHandler:   params.ProfileHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public catalog browsing
	api.GET("/shops", r.catalogHandler.ListShops)
	api.GET("/foodItems", r.catalogHandler.ListItemsOfKind(entity.KindFood))
	api.GET("/electronicsItems", r.catalogHandler.ListItemsOfKind(entity.KindElectronics))
	api.GET("/groceryItems", r.catalogHandler.ListItemsOfKind(entity.KindGrocery))

	// Catalog management requires authentication; the usecase enforces
	// who may manage which shop.
	itemGroup := api.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.POST("/:kind", r.catalogHandler.CreateItem)
		itemGroup.PATCH("/:kind/:id", r.catalogHandler.UpdateItem)
		itemGroup.DELETE("/:kind/:id", r.catalogHandler.DeleteItem)
	}

	// Profile routes
	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOwnOrders)
		orderGroup.GET("/manage", r.orderHandler.ListManagedOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/status", r.orderHandler.GetOrderStatus)
		orderGroup.PATCH("/:id", r.orderHandler.UpdateStatus)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	// Payment routes
	paymentGroup := api.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("/initiate", r.paymentHandler.InitiatePayment)
		paymentGroup.GET("/verify/:reference", r.paymentHandler.VerifyPayment)
	}

	// Staff dashboard
	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/summary", r.dashboardHandler.GetSummary)
	}
}
