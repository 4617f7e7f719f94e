package mail

import (
	"context"
	"fmt"
)

type Message struct {
	To      string
	Subject string
	Text    string
}

// Mailer sends a message synchronously within the request. Callers do
// not retry; delivery failures on the registration path are logged and
// swallowed.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ConfirmationMessage builds the registration confirmation email with
// the token link for the requesting host.
func ConfirmationMessage(email, host, token string) Message {
	url := fmt.Sprintf("http://%s/users/email-confirm/%s/", host, token)
	return Message{
		To:      email,
		Subject: "Ларёк - подтверждение Email",
		Text:    fmt.Sprintf("Привет, %s! Для окончания регистрации в интернет-магазине Ларёк, перейди по ссылке - %s", email, url),
	}
}

// NewPasswordMessage builds the password reset email carrying the
// freshly generated password in cleartext.
func NewPasswordMessage(email, password string) Message {
	return Message{
		To:      email,
		Subject: "Ларёк - восстановление пароля",
		Text:    fmt.Sprintf("Привет, %s! Это твой новый пароль для входа в интернет-магазине Ларёк - %s", email, password),
	}
}
