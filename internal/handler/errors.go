package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/middleware"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/utils"
)

// respondError renders err in the standard envelope. API errors keep their upstream
// status and message; an auth failure also tells the panel to navigate to the root.
func respondError(c *gin.Context, err error, fallback string) {
	if apiErr, ok := apiclient.AsAPIError(err); ok {
		if apiErr.IsAuthFailure() {
			target, ok := middleware.RedirectTarget(c)
			if !ok {
				target = apiclient.RootPath
			}
			utils.RedirectResponse(c, apiErr.Status, apiErr.Message, target)
			return
		}

		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, utils.APIResponse{
			Success: false,
			Message: apiErr.Message,
			Data:    apiErr.Data,
		})
		return
	}

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.BadRequestResponse(c, vErr.Error(), err)
	case errors.Is(err, service.ErrInvalidID):
		utils.BadRequestResponse(c, "Invalid ID", err)
	case errors.Is(err, service.ErrNotAuthenticated):
		utils.RedirectResponse(c, http.StatusUnauthorized, "Authentication required", apiclient.RootPath)
	default:
		utils.InternalServerErrorResponse(c, fallback, err)
	}
}

// bindingMessage turns the first field error of a binding failure into a readable message
func bindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request body"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "numeric":
		return fe.Field() + " must be numeric"
	case "phone":
		return fe.Field() + " must be a valid phone number"
	case "hhmm":
		return fe.Field() + " must be a time in HH:MM format"
	default:
		return fe.Field() + " is invalid"
	}
}
