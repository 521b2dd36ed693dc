package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resendlabs/resend-go"
	"github.com/soesapp/soes-eventos-backend/internal/config"
	"go.uber.org/zap"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Inscrição confirmada!</h2>
<p>Olá {{.FullName}},</p>
<p>Sua inscrição no evento <strong>{{.EventTitle}}</strong> foi confirmada.</p>
<p>Data: {{.EventDate}}<br>Local: {{.EventLocation}}</p>
<p>Nos vemos lá!</p>
`))

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey string, cfg config.EmailConfig, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

type ConfirmationData struct {
	FullName      string
	EventTitle    string
	EventDate     string
	EventLocation string
}

// SendRegistrationConfirmation mails the attendee after a successful
// registration. Callers treat it as best-effort.
func (s *EmailService) SendRegistrationConfirmation(to string, data ConfirmationData) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		s.logger.Error("failed to render confirmation email", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: fmt.Sprintf("Inscrição confirmada: %s", data.EventTitle),
		Html:    body.String(),
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("failed to send confirmation email", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("confirmation email sent", zap.String("to", to), zap.String("id", resp.Id))
	return nil
}
