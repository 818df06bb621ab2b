package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizbuilder/apperr"
	"quizbuilder/logger"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors"`
}

const genericErrorMessage = "Internal server error. Please try again later."

// RespondError performs the total mapping from the service error taxonomy
// to HTTP responses. Unclassified failures fall through to a logged 500
// with a generic body so internal detail never leaks to the caller.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	var aerr *apperr.Error
	if errors.As(err, &aerr) {
		switch aerr.Kind {
		case apperr.KindValidation:
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Message: aerr.Message,
				Errors:  aerr.Fields,
			})
			return
		case apperr.KindMalformedID:
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: aerr.Message})
			return
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Message: aerr.Message})
			return
		case apperr.KindStorage:
			log.Error("storage failure", "path", c.FullPath(), "error", aerr.Unwrap())
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: genericErrorMessage})
			return
		}
	}

	log.Error("unclassified failure", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: genericErrorMessage})
}
