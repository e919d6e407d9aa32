package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/labstack/echo/v4"
)

type StatsController struct {
	service service.StatsService
}

func CreateStatsController(admin *echo.Group, service service.StatsService) {
	sc := StatsController{
		service: service,
	}
	admin.GET("/admin/overview", sc.GetOverview)
}

func (c *StatsController) GetOverview(e echo.Context) error {
	resp, err := c.service.GetOverview(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
