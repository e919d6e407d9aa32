package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(public *echo.Group, admin *echo.Group, service service.CategoryService) {
	cc := CategoryController{
		service: service,
	}
	public.GET("/categories", cc.GetCategories)
	public.GET("/categories/:id", cc.GetCategoryByID)
	admin.POST("/categories", cc.AddCategory)
	admin.DELETE("/categories/:id", cc.DeleteCategory)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	err = c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	resp, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
