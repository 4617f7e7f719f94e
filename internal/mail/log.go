package mail

import (
	"context"

	"github.com/larekshop/larek-backend/internal/logger"
)

type logMailer struct {
	log *logger.Logger
}

// NewLogMailer writes outgoing mail to the log instead of sending it.
// Used when no SendGrid key is configured, so local setups can register
// users without a mail account.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{log: log.With("service", "LogMailer")}
}

func (lm *logMailer) Send(ctx context.Context, msg Message) error {
	lm.log.Info("Outgoing email (not sent)", "to", msg.To, "subject", msg.Subject, "text", msg.Text)
	return nil
}
