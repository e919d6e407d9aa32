package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(public *echo.Group, auth *echo.Group, admin *echo.Group, service service.ReviewService) {
	rc := ReviewController{
		service: service,
	}
	public.GET("/products/:id/reviews", rc.GetProductReviews)
	auth.POST("/reviews", rc.AddReview)
	admin.DELETE("/reviews/:id", rc.DeleteReview)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	err = c.service.AddReview(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ReviewController) GetProductReviews(e echo.Context) error {
	resp, err := c.service.GetProductReviews(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ReviewController) DeleteReview(e echo.Context) error {
	err := c.service.DeleteReview(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
