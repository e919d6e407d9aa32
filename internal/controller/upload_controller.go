package controller

import (
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(admin *echo.Group, service service.UploadService) {
	uc := UploadController{
		service: service,
	}
	admin.POST("/uploads", uc.UploadImage)
}

func (c *UploadController) UploadImage(e echo.Context) error {
	fileHeader, err := e.FormFile("file")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}
	defer file.Close()

	url, err := c.service.UploadImage(e.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.UploadResponse{URL: url})
}
