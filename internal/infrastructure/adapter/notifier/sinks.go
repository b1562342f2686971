package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// LogSink writes every event to the structured log
type LogSink struct {
	logger coreport.Logger
}

// NewLogSink creates a sink that only logs
func NewLogSink(logger coreport.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, event entity.Event) error {
	s.logger.Info("Event", map[string]any{
		"type":           string(event.Type),
		"transaction_id": event.TransactionID,
		"dispute_id":     event.DisputeID,
		"status":         event.Status,
		"recipients":     event.Recipients,
	})
	return nil
}

// webhookPayload is the JSON body posted to the webhook endpoint
type webhookPayload struct {
	Type          string    `json:"type"`
	TransactionID string    `json:"transactionId"`
	DisputeID     string    `json:"disputeId,omitempty"`
	Recipients    []string  `json:"recipients"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// WebhookSink posts events to the marketplace's notification endpoint,
// signed with HMAC-SHA256 when a secret is set
type WebhookSink struct {
	url    string
	secret string
	client *http.Client
}

// NewWebhookSink creates a webhook sink
func NewWebhookSink(url, secret string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, event entity.Event) error {
	payload, err := json.Marshal(webhookPayload{
		Type:          string(event.Type),
		TransactionID: event.TransactionID,
		DisputeID:     event.DisputeID,
		Recipients:    event.Recipients,
		Status:        event.Status,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Escrow-Event", string(event.Type))
	req.Header.Set("X-Escrow-Timestamp", fmt.Sprintf("%d", event.OccurredAt.Unix()))
	if s.secret != "" {
		req.Header.Set("X-Escrow-Signature", Sign(payload, s.secret))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
