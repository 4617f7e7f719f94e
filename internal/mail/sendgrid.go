package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/utils"
)

type SendGridConfig struct {
	APIKey     string
	BaseURL    string
	FromEmail  string
	FromName   string
	Timeout    time.Duration
	MaxRetries int
}

func SendGridConfigFromEnv(log *logger.Logger) SendGridConfig {
	timeoutSec := utils.GetEnvAsInt("SENDGRID_TIMEOUT_SECONDS", 30, log)
	maxRetries := utils.GetEnvAsInt("SENDGRID_MAX_RETRIES", 4, log)
	return SendGridConfig{
		APIKey:     strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		BaseURL:    strings.TrimSpace(os.Getenv("SENDGRID_BASE_URL")),
		FromEmail:  strings.TrimSpace(os.Getenv("SENDGRID_FROM_EMAIL")),
		FromName:   strings.TrimSpace(os.Getenv("SENDGRID_FROM_NAME")),
		Timeout:    time.Duration(timeoutSec) * time.Second,
		MaxRetries: maxRetries,
	}
}

func NewSendGridMailer(log *logger.Logger, cfg SendGridConfig) (Mailer, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing SENDGRID_API_KEY")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, fmt.Errorf("missing SENDGRID_FROM_EMAIL")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 4
	}

	return &sendGridMailer{
		log:        log.With("client", "SendGridMailer"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type sendGridMailer struct {
	log        *logger.Logger
	cfg        SendGridConfig
	httpClient *http.Client
}

// --- SendGrid mail send wire types ---

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

func (m *sendGridMailer) Send(ctx context.Context, msg Message) error {
	if m == nil || m.httpClient == nil {
		return fmt.Errorf("sendgrid mailer unavailable")
	}
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("sendgrid: recipient required")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("sendgrid: subject required")
	}
	if strings.TrimSpace(msg.Text) == "" {
		return fmt.Errorf("sendgrid: text content required")
	}

	wire := mailSendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: msg.To}}}},
		From:             emailAddress{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
		Subject:          msg.Subject,
		Content:          []mailContent{{Type: "text/plain", Value: msg.Text}},
	}

	return m.do(ctx, "/v3/mail/send", wire)
}

type errorItem struct {
	Message string `json:"message"`
	Field   any    `json:"field,omitempty"`
}

type errorResponse struct {
	Errors []errorItem `json:"errors"`
}

type HTTPError struct {
	StatusCode int
	Body       string
	Errors     []errorItem
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "sendgrid: <nil error>"
	}
	if len(e.Errors) > 0 && strings.TrimSpace(e.Errors[0].Message) != "" {
		return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, e.Errors[0].Message)
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, msg)
}

func (m *sendGridMailer) do(ctx context.Context, path string, body any) error {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= m.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := m.doOnce(ctx, path, body)
		if err == nil {
			return nil
		}

		if !isRetryable(err) || attempt == m.cfg.MaxRetries {
			return err
		}

		m.log.Warn("Sendgrid request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", m.cfg.MaxRetries,
			"sleep", backoff.String(),
			"error", err.Error(),
		)

		time.Sleep(backoff)
		backoff *= 2
	}

	return errors.New("unreachable retry loop")
}

func (m *sendGridMailer) doOnce(ctx context.Context, path string, body any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && len(er.Errors) > 0 {
			he.Errors = er.Errors
		}
		return he
	}

	return nil
}

func isRetryable(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == http.StatusTooManyRequests || he.StatusCode >= 500
	}
	// Transport-level failures are worth another attempt.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
