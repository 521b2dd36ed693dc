package service

import (
	"context"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/pkg/email"
)

// Store interfaces are satisfied by the gorm repositories; services depend
// on them so business rules can be exercised without a database.

type EventStore interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id string) (*models.Event, error)
	GetAll() ([]models.Event, error)
	GetActive() ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id string) error
}

type AttendeeStore interface {
	Create(attendee *models.Attendee) (*models.Attendee, error)
	GetByID(id string) (*models.Attendee, error)
	GetByEvent(eventID string) ([]models.Attendee, error)
	SearchByEvent(eventID, query string) ([]models.Attendee, error)
	CountByEvent(eventID string) (int64, error)
	Update(attendee *models.Attendee) error
	Delete(id string) error
	DeleteByEvent(eventID string) error
}

type SettingsStore interface {
	Get() (*models.Settings, error)
	Save(settings *models.Settings) error
}

// CRMSender delivers a new attendee to the organizer's webhook and reports
// success; it never returns an error.
type CRMSender interface {
	Send(ctx context.Context, attendee *models.Attendee, event *models.Event, webhookURL *string) bool
}

type Mailer interface {
	SendRegistrationConfirmation(to string, data email.ConfirmationData) error
}
