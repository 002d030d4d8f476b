package handlers

import (
	"net/http"

	apperrors "bicycle-maintenance-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// respondError maps the core's failure kinds onto HTTP statuses:
// NotFound -> 404, Validation -> 422, Authentication -> 401, anything
// else -> 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		var verr *apperrors.ValidationError
		if ok := asValidationError(err, &verr); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "details": verr.Details})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsInternal(err):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func asValidationError(err error, target **apperrors.ValidationError) bool {
	v, ok := err.(*apperrors.ValidationError)
	if ok {
		*target = v
	}
	return ok
}

// parseUUIDParam reads a UUID path parameter, writing a 404 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": name + " is not a valid id"})
		return uuid.Nil, false
	}
	return id, true
}
