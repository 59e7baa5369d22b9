package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventcraft/internal/lib/logger/sl"
)

// emailRequest is the payload shape of the Resend send endpoint.
type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type emailResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Resend is a thin client for the Resend email API. Credentials and the
// sender address are injected at startup; the zero value is unusable.
type Resend struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewResend(log *slog.Logger, baseURL, apiKey, from string, timeout time.Duration) *Resend {
	return &Resend{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
	}
}

// Send delivers one HTML email. There are no retries: a failed send is the
// caller's problem to log or propagate.
func (r *Resend) Send(ctx context.Context, to []string, subject, html string) error {
	const op = "mailer.Resend.Send"

	if len(to) == 0 {
		return fmt.Errorf("%s: at least one recipient is required", op)
	}

	payload, err := json.Marshal(emailRequest{
		From:    r.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%s: api error (status %d): %s", op, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%s: api error (status %d): %s", op, resp.StatusCode, string(body))
	}

	var emailResp emailResponse
	if err := json.Unmarshal(body, &emailResp); err != nil {
		r.log.Warn("email sent but response not parseable", sl.Err(err))
		return nil
	}

	r.log.Info("email sent", slog.String("email_id", emailResp.ID), slog.String("subject", subject))

	return nil
}
