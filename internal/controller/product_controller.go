package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(public *echo.Group, admin *echo.Group, service service.ProductService) {
	pc := ProductController{
		service: service,
	}
	public.GET("/products", pc.GetProducts)
	public.GET("/products/:id", pc.GetProductByID)
	admin.POST("/products", pc.AddProduct)
	admin.PUT("/products/:id", pc.UpdateProduct)
	admin.DELETE("/products/:id", pc.DeleteProduct)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	err = c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	payload := pkgdto.Filter{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	resp, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.ID = e.Param("id")
	err = c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
