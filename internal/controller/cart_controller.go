package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(auth *echo.Group, service service.CartService) {
	cc := CartController{
		service: service,
	}
	auth.GET("/carts", cc.GetCart)
	auth.POST("/carts/items", cc.AddItem)
	auth.DELETE("/carts/items/:productId", cc.RemoveItem)
	auth.PUT("/carts/items/:productId/increase", cc.IncreaseQuantity)
	auth.PUT("/carts/items/:productId/decrease", cc.DecreaseQuantity)
	auth.DELETE("/carts", cc.ClearCart)
	auth.POST("/carts/checkout", cc.StageCheckout)
	auth.GET("/carts/checkout", cc.GetCheckout)
}

func (c *CartController) GetCart(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	resp, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddItem(e echo.Context) error {
	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddItem").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	err = c.service.AddItem(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) RemoveItem(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	err := c.service.RemoveItem(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) IncreaseQuantity(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	err := c.service.IncreaseQuantity(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) DecreaseQuantity(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	err := c.service.DecreaseQuantity(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) ClearCart(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	err := c.service.ClearCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) StageCheckout(e echo.Context) error {
	payload := dto.CheckoutSelectionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "StageCheckout").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	items, err := c.service.StageCheckout(e.Request().Context(), userID, payload.ProductIDs)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", items)
}

func (c *CartController) GetCheckout(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	resp, err := c.service.GetCheckout(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
