package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/services"
)

type AccountHandler struct {
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (ah *AccountHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := ah.accountService.Register(c.Request.Context(), req, c.Request.Host)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"user": user, "next": "/users/email-confirmation-sent"})
}

func (ah *AccountHandler) ConfirmEmail(c *gin.Context) {
	err := ah.accountService.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"next": "/users/email-confirmed"})
}

// PasswordReset never tells the caller whether the email was on file in
// any way beyond the redirect target.
func (ah *AccountHandler) PasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := ah.accountService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			RespondOK(c, gin.H{"next": "/users/email-not-found"})
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"next": "/users/password-reset-sent"})
}
