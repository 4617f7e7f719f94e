package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/services"
)

type APIError struct {
	Message string               `json:"message"`
	Code    string               `json:"code,omitempty"`
	Form    string               `json:"form,omitempty"`
	Fields  services.FieldErrors `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError maps service errors onto the envelope. Validation
// errors carry their per-field messages so the client can re-render the
// form in place.
func RespondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Error: APIError{
				Message: vErr.Error(),
				Code:    "validation_failed",
				Form:    vErr.Form,
				Fields:  vErr.Fields,
			},
		})
		return
	}
	status, code := apperr.StatusFor(err)
	RespondError(c, status, code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
