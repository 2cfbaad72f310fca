package handler

import (
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// principal returns the authenticated caller. Routes using it sit behind Authenticate,
// so a missing principal yields the zero value, which no ownership check accepts.
func principal(c echo.Context) entity.Principal {
	p, _ := deliverycontext.GetPrincipal(c.Request().Context())

	return p
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

func invalidBody(c echo.Context) error {
	return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
}

func validationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", err.Error(), verr.Fields())
	}

	return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
}
