package api

import (
	"errors"
	"net/http"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/handler/httperr"
	"luxstay-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const validationFailed = "Validation failed"

func principalOrAbort(c *gin.Context) (auth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		// RequireAuth did not run for this route
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
	}
	return principal, ok
}

func idParam(c *gin.Context, name, invalidMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, invalidMsg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationFailed, fieldErrors(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationFailed, fieldErrors(err))
		return false
	}
	return true
}

func fieldErrors(err error) []httperr.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httperr.FieldError{{Field: "body", Message: "malformed request"}}
	}
	details := make([]httperr.FieldError, len(verrs))
	for i, fe := range verrs {
		details[i] = httperr.FieldError{Field: fe.Field(), Message: ruleMessage(fe)}
	}
	return details
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min", "gt":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "isodate":
		return "must be an ISO 8601 date"
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "roomtype":
		return "must be a valid room type"
	case "reservationstatus":
		return "must be a valid reservation status"
	default:
		return "is invalid"
	}
}
