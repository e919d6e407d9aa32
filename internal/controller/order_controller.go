package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(auth *echo.Group, admin *echo.Group, service service.OrderService) {
	oc := OrderController{
		service: service,
	}
	auth.POST("/orders", oc.PlaceOrder)
	auth.GET("/orders", oc.GetUserOrders)
	admin.GET("/admin/orders", oc.GetOrders)
	admin.GET("/admin/orders/:id", oc.GetOrderByID)
	admin.PUT("/admin/orders/:id/status", oc.UpdateOrderStatus)
}

func (c *OrderController) PlaceOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID
	err = c.service.PlaceOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	resp, err := c.service.GetUserOrders(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	payload := pkgdto.Filter{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
	}

	resp, err := c.service.GetOrders(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	resp, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	err = c.service.UpdateOrderStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
