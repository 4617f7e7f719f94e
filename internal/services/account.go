package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/mail"
	"github.com/larekshop/larek-backend/internal/repos"
	"github.com/larekshop/larek-backend/internal/types"
	"github.com/larekshop/larek-backend/internal/utils"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
}

type AccountService interface {
	Register(ctx context.Context, in RegisterInput, host string) (*types.User, error)
	ConfirmEmail(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email string) error
}

type accountService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userEventRepo repos.UserEventRepo
	mailer        mail.Mailer
	resetLength   int
}

func NewAccountService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userEventRepo repos.UserEventRepo,
	mailer mail.Mailer,
	resetLength int,
) AccountService {
	serviceLog := log.With("service", "AccountService")
	if resetLength <= 0 {
		resetLength = 10
	}
	return &accountService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userEventRepo: userEventRepo,
		mailer:        mailer,
		resetLength:   resetLength,
	}
}

// Register persists the new user inactive with a fresh confirmation
// token and mails the confirmation link. A failed send is logged and
// swallowed; the caller always lands on the check-your-email page.
func (as *accountService) Register(ctx context.Context, in RegisterInput, host string) (*types.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	fieldErrs := FieldErrors{}
	if in.Email == "" {
		fieldErrs["email"] = "email is required"
	}
	if in.Password == "" {
		fieldErrs["password"] = "password is required"
	}
	if len(fieldErrs) == 0 {
		exists, err := as.userRepo.EmailExists(ctx, nil, in.Email)
		if err != nil {
			return nil, fmt.Errorf("Failed to check user email: %w", err)
		}
		if exists {
			fieldErrs["email"] = "email is already in use"
		}
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Form: "registration", Fields: fieldErrs}
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateConfirmToken()
	if err != nil {
		return nil, err
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    in.Email,
		Password: hashed,
		Phone:    in.Phone,
		Country:  in.Country,
		Token:    token,
		IsActive: false,
	}
	if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
		return nil, fmt.Errorf("Failed to create user: %w", err)
	}

	as.recordEvent(ctx, user.ID, types.UserEventRegistered, map[string]any{"host": host})

	msg := mail.ConfirmationMessage(user.Email, host, token)
	if err := as.mailer.Send(ctx, msg); err != nil {
		as.log.Warn("Failed to send confirmation email", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// ConfirmEmail activates the user behind the token. The token stays on
// the row afterwards, so revisiting the link reactivates idempotently.
func (as *accountService) ConfirmEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return apperr.ErrNotFound
	}

	users, err := as.userRepo.GetByTokens(ctx, nil, []string{token})
	if err != nil {
		return fmt.Errorf("Failed to look up confirmation token: %w", err)
	}
	if len(users) == 0 {
		return apperr.ErrNotFound
	}

	user := users[0]
	user.IsActive = true
	if err := as.userRepo.Update(ctx, nil, user); err != nil {
		return fmt.Errorf("Failed to activate user: %w", err)
	}

	as.recordEvent(ctx, user.ID, types.UserEventEmailConfirmed, nil)
	return nil
}

// ResetPassword generates a fresh password, persists only its hash and
// mails the plaintext. Every failure, lookup or otherwise, surfaces the
// same way: the caller redirects to the email-not-found page with no
// detail leaked.
func (as *accountService) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		as.log.Warn("Password reset lookup failed", "error", err)
		return apperr.ErrNotFound
	}
	if len(users) == 0 {
		return apperr.ErrNotFound
	}
	user := users[0]

	password, err := utils.GeneratePassword(as.resetLength)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := as.userRepo.Update(ctx, nil, user); err != nil {
		as.log.Warn("Password reset persist failed", "user_id", user.ID, "error", err)
		return apperr.ErrNotFound
	}

	if err := as.mailer.Send(ctx, mail.NewPasswordMessage(user.Email, password)); err != nil {
		as.log.Warn("Password reset email failed", "user_id", user.ID, "error", err)
		return apperr.ErrNotFound
	}

	as.recordEvent(ctx, user.ID, types.UserEventPasswordReset, nil)
	return nil
}

func (as *accountService) recordEvent(ctx context.Context, userID uuid.UUID, eventType string, data map[string]any) {
	var payload datatypes.JSON
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			as.log.Warn("Failed to encode audit payload", "type", eventType, "error", err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}
	event := &types.UserEvent{
		ID:     uuid.New(),
		UserID: userID,
		Type:   eventType,
		Data:   payload,
	}
	if _, err := as.userEventRepo.Create(ctx, nil, []*types.UserEvent{event}); err != nil {
		as.log.Warn("Failed to record audit event", "type", eventType, "error", err)
	}
}
