package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	apierrors "github.com/yukikurage/backoffice-api/internal/errors"
	"github.com/yukikurage/backoffice-api/internal/logs"
	"github.com/yukikurage/backoffice-api/internal/middleware"
	"github.com/yukikurage/backoffice-api/internal/services"
)

// bindInput decodes the procedure input into req and validates it. An empty
// body is treated as an empty object. It writes the error response and
// returns false when the input is rejected.
func bindInput(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return true
	}

	if details, ok := validationDetails(err); ok {
		apierrors.BadRequestWithDetails(c, "Validation failed", details)
		return false
	}
	apierrors.BadRequest(c, "Invalid request body")
	return false
}

// resolveCreator returns the explicit created_by value or falls back to the
// calling actor.
func resolveCreator(c *gin.Context, explicit *uint64) (uint64, bool) {
	if explicit != nil && *explicit != 0 {
		return *explicit, true
	}
	if actorID, ok := middleware.GetActorID(c); ok {
		return actorID, true
	}
	apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{{
		Field:   "created_by",
		Message: "is required",
	}})
	return 0, false
}

// respondServiceError maps service errors to API errors. Unexpected errors
// are logged and never echoed to the caller.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{{
			Field:   validationErr.Field,
			Message: validationErr.Message,
		}})
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCrossTenantViolation):
		apierrors.Conflict(c, apierrors.ErrCodeCrossTenantViolation, err.Error())
	case errors.Is(err, services.ErrDuplicateMembership):
		apierrors.Conflict(c, apierrors.ErrCodeDuplicateMembership, err.Error())
	case errors.Is(err, services.ErrUniquenessViolation):
		apierrors.Conflict(c, apierrors.ErrCodeAlreadyExists, err.Error())
	default:
		logs.Logger.WithFields(logrus.Fields{
			"reqid": middleware.GetRequestID(c),
			"path":  c.Request.URL.Path,
		}).WithError(err).Error("procedure failed")
		apierrors.InternalError(c, "")
	}
}
