// Package webhook delivers new leads to the organizer's CRM.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type leadPayload struct {
	Action string `json:"action"`
	Lead   lead   `json:"lead"`
}

type lead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Origin  string `json:"origin"`
	Note    string `json:"note"`
}

type CRMSender struct {
	client *http.Client
	logger *zap.Logger
}

func NewCRMSender(logger *zap.Logger) *CRMSender {
	return &CRMSender{
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// Send posts the attendee to the configured webhook and reports whether
// delivery succeeded. A nil URL means the webhook is not configured and the
// sync is skipped. Delivery failures are logged and reported as false; they
// never propagate as errors, the caller only records the sync flag.
func (s *CRMSender) Send(ctx context.Context, attendee *models.Attendee, event *models.Event, webhookURL *string) bool {
	if webhookURL == nil || *webhookURL == "" {
		s.logger.Debug("webhook URL not configured, skipping CRM sync")
		return false
	}

	payload := leadPayload{
		Action: "new_lead",
		Lead: lead{
			Name:    attendee.FullName,
			Email:   attendee.Email,
			Phone:   attendee.Phone,
			Company: attendee.Company,
			Origin:  "SOES App",
			Note:    fmt.Sprintf("Inscrito no evento: %s em %s", event.Title, event.Date),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal CRM payload", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *webhookURL, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to build CRM request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("CRM sync failed", zap.String("url", *webhookURL), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("CRM webhook returned non-2xx status",
			zap.String("url", *webhookURL),
			zap.Int("status", resp.StatusCode),
		)
		return false
	}

	s.logger.Info("attendee synced to CRM", zap.String("attendee_id", attendee.ID))
	return true
}
