package controller

import (
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/middleware"
	"github.com/azor-ahai1/SwapSpace/internal/service"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	orderService service.OrderService
}

func CreateOrderController(e *echo.Group, orderService service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		orderService: orderService,
	}
	e.POST("/orders/place-order", c.PlaceOrder, isLoggedIn)
	e.POST("/orders/cancel-order", c.CancelOrder, isLoggedIn)
	e.POST("/orders/accept-order", c.AcceptOrder, isLoggedIn)
	e.POST("/orders/reject-order", c.RejectOrder, isLoggedIn)
	e.GET("/orders/product-orders/:productId", c.ProductPendingOrders, isLoggedIn)
	e.GET("/orders/product-all-orders/:productId", c.ProductOrders, isLoggedIn)
}

func (c *OrderController) PlaceOrder(e echo.Context) error {
	payload := dto.PlaceOrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	resp, err := c.orderService.PlaceOrder(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Order Placed Successfully", resp)
}

func (c *OrderController) CancelOrder(e echo.Context) error {
	payload := dto.CancelOrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CancelOrder").Msg("")
	}

	resp, err := c.orderService.CancelOrder(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Order cancelled successfully", resp)
}

func (c *OrderController) AcceptOrder(e echo.Context) error {
	payload := dto.OrderActionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AcceptOrder").Msg("")
	}

	resp, err := c.orderService.AcceptOrder(e.Request().Context(), middleware.UserID(e), payload.OrderID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Order accepted successfully", resp)
}

func (c *OrderController) RejectOrder(e echo.Context) error {
	payload := dto.OrderActionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "RejectOrder").Msg("")
	}

	resp, err := c.orderService.RejectOrder(e.Request().Context(), middleware.UserID(e), payload.OrderID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Order rejected successfully", resp)
}

func (c *OrderController) ProductPendingOrders(e echo.Context) error {
	resp, err := c.orderService.GetProductPendingOrders(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Product orders retrieved successfully", resp)
}

func (c *OrderController) ProductOrders(e echo.Context) error {
	resp, err := c.orderService.GetProductOrders(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Product orders retrieved successfully", resp)
}
