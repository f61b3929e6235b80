package handler

import (
	"log/slog"
	"net/http"

	"eshop/internal/delivery/api/response"
	"eshop/internal/domain/entity"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders and their line items.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	Product  string `json:"product" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the body of POST /orders. totalPrice and status are
// not part of it; both are set by the server.
type CreateOrderRequest struct {
	OrderItems       []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress1 string             `json:"shippingAddress1" validate:"required"`
	ShippingAddress2 string             `json:"shippingAddress2" validate:"required"`
	City             string             `json:"city" validate:"required"`
	Zip              string             `json:"zip" validate:"required"`
	Country          string             `json:"country" validate:"required"`
	Phone            string             `json:"phone" validate:"required"`
	User             string             `json:"user" validate:"required,uuid"`
}

func (r *CreateOrderRequest) toInput() *usecase.CreateOrderInput {
	lines := make([]entity.OrderLine, 0, len(r.OrderItems))
	for _, item := range r.OrderItems {
		lines = append(lines, entity.OrderLine{
			ProductID: uuid.MustParse(item.Product),
			Quantity:  item.Quantity,
		})
	}

	return &usecase.CreateOrderInput{
		Items:            lines,
		ShippingAddress1: r.ShippingAddress1,
		ShippingAddress2: r.ShippingAddress2,
		City:             r.City,
		Zip:              r.Zip,
		Country:          r.Country,
		Phone:            r.Phone,
		UserID:           uuid.MustParse(r.User),
	}
}

// UpdateOrderRequest is the body of PUT /orders/:id.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus handles PUT /orders/:id
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Order and order items deleted successfully")
}

// TotalSales handles GET /orders/get/totalsales
func (h *OrderHandler) TotalSales(c echo.Context) error {
	total, err := h.orderUC.TotalSales(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "totalSales": total})
}

// CountOrders handles GET /orders/get/count
func (h *OrderHandler) CountOrders(c echo.Context) error {
	count, err := h.orderUC.CountOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "orderCount": count})
}

// ListUserOrders handles GET /orders/get/userorders/:userid
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	userID, err := paramID(c, "userid")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "userOrders": orders})
}

// GetOrderItem handles GET /orders/items/:id
func (h *OrderHandler) GetOrderItem(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.orderUC.GetOrderItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}
