// Package router contains the route table of the REST API.
package router

import (
	"eshop/config"
	"eshop/internal/delivery/api/router/handler"
	"eshop/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	UploadHandler   *handler.UploadHandler
	AuthGate        *middleware.AuthGate
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	uploadHandler   *handler.UploadHandler
	authGate        *middleware.AuthGate
	apiRoot         string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		uploadHandler:   params.UploadHandler,
		authGate:        params.AuthGate,
		apiRoot:         config.NormalizeAPIRoot(params.Config.API.Root),
	}
}

// RegisterRoutes installs the gate in front of every route and mounts the
// resource groups under the API root.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authGate.Handle)

	e.GET("/health", handler.HealthCheck)
	e.GET("/public/uploads/*", r.uploadHandler.ServeUpload)

	api := e.Group(r.apiRoot)

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.GET("/:id/qr", r.productHandler.ProductQRCode)
		products.GET("/get/count", r.productHandler.CountProducts)
		products.GET("/get/featured/:count", r.productHandler.FeaturedProducts)
		products.POST("", r.productHandler.CreateProduct)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.PUT("/gallery-images/:id", r.productHandler.UpdateGallery)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.ListCategories)
		categories.GET("/:id", r.categoryHandler.GetCategory)
		categories.POST("", r.categoryHandler.CreateCategory)
		categories.PUT("/:id", r.categoryHandler.UpdateCategory)
		categories.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.GET("/items/:id", r.orderHandler.GetOrderItem)
		orders.GET("/get/totalsales", r.orderHandler.TotalSales)
		orders.GET("/get/count", r.orderHandler.CountOrders)
		orders.GET("/get/userorders/:userid", r.orderHandler.ListUserOrders)
		orders.POST("", r.orderHandler.CreateOrder)
		orders.PUT("/:id", r.orderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	users := api.Group("/users")
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.GET("/get/count", r.userHandler.CountUsers)
		users.POST("", r.userHandler.CreateUser)
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
