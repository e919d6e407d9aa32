package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ContactController struct {
	service service.ContactService
}

func CreateContactController(public *echo.Group, service service.ContactService) {
	cc := ContactController{
		service: service,
	}
	public.POST("/contact", cc.SendMessage)
}

func (c *ContactController) SendMessage(e echo.Context) error {
	payload := dto.ContactRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SendMessage").Msg("")
	}

	err = c.service.SendMessage(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
