package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizza-shop/models"
)

// respondError maps a service error onto the HTTP taxonomy:
// validation 400, duplicate identity 409, auth failures 401, missing
// rows 404, anything else an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrWrongTokenType):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Only refresh tokens are allowed"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error"})
	}
}
