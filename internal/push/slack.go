package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// ErrEmptyWebhook is returned by Send before any request is made.
var ErrEmptyWebhook = errors.New("slack webhook url is empty")

// NotifyError reports a failed delivery. StatusCode is 0 when no response
// was received.
type NotifyError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *NotifyError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("slack notify: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("slack notify: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("slack notify: status %d", e.StatusCode)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

// Slack posts messages to an incoming webhook.
type Slack struct {
	Webhook string
	Timeout time.Duration
}

type payload struct {
	Text string `json:"text"`
}

// Send posts text once. Any non-2xx status is a failure; nothing is retried.
func (s *Slack) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(s.Webhook) == "" {
		return ErrEmptyWebhook
	}
	buf, err := json.Marshal(payload{Text: text})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(buf))
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &NotifyError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			Err:        errors.New(resp.Status),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func transportError(err error) *NotifyError {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redact(uerr.URL)
	}
	return &NotifyError{Err: err}
}

// redact keeps scheme and host; webhook paths carry the secret token.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "[redacted]"
	}
	return u.Scheme + "://" + u.Host + "/[redacted]"
}
