package middleware

import (
	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/labstack/echo/v4"
)

// RequireAdmin rejects requests whose JWT does not carry the admin role. It
// must run after the JWT middleware has populated the token in the context.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, _, role := utils.ExtractTokenUser(c)
		if role != domain.RoleAdmin {
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		}

		return next(c)
	}
}
