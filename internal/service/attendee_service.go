package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/soesapp/soes-eventos-backend/internal/admission"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/pkg/email"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExportFilename is the download name organizers expect for the CSV export.
const ExportFilename = "inscritos.csv"

type AttendeeService struct {
	attendeeStore AttendeeStore
	eventStore    EventStore
	settingsStore SettingsStore
	crm           CRMSender
	mailer        Mailer
	logger        *zap.Logger
	now           func() time.Time
}

func NewAttendeeService(
	attendeeStore AttendeeStore,
	eventStore EventStore,
	settingsStore SettingsStore,
	crm CRMSender,
	mailer Mailer,
	logger *zap.Logger,
) *AttendeeService {
	return &AttendeeService{
		attendeeStore: attendeeStore,
		eventStore:    eventStore,
		settingsStore: settingsStore,
		crm:           crm,
		mailer:        mailer,
		logger:        logger,
		now:           time.Now,
	}
}

// Register handles a public self-registration. The attendee count is re-read
// at submission time and the sold-out gate is checked before anything is
// written. The check is best-effort: nothing locks the event between count
// and insert, so two concurrent last-slot submissions can both succeed.
func (s *AttendeeService) Register(ctx context.Context, eventID string, req models.RegistrationRequest) (*models.Attendee, error) {
	// Exact, case-sensitive comparison; rejected before any collaborator
	// is contacted.
	if req.Email != req.ConfirmEmail {
		return nil, ErrEmailMismatch
	}

	event, err := s.eventStore.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !event.Active {
		return nil, ErrEventInactive
	}

	count, err := s.attendeeStore.CountByEvent(eventID)
	if err != nil {
		return nil, err
	}
	if err := admission.Admit(event.Capacity, count); err != nil {
		return nil, err
	}

	return s.createAttendee(ctx, event, models.Attendee{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
	})
}

// CreateByAdmin is the organizer's manual entry. It follows the same webhook
// and persistence path as self-registration but does not consult the
// sold-out gate, so organizers can register people past capacity.
func (s *AttendeeService) CreateByAdmin(ctx context.Context, req models.AttendeeRequest) (*models.Attendee, error) {
	event, err := s.eventStore.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return s.createAttendee(ctx, event, models.Attendee{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
	})
}

// createAttendee runs the shared tail of both registration paths: CRM sync
// first, then persistence, then a fire-and-forget confirmation email.
func (s *AttendeeService) createAttendee(ctx context.Context, event *models.Event, attendee models.Attendee) (*models.Attendee, error) {
	attendee.ID = uuid.NewString()
	attendee.EventID = event.ID
	attendee.RegistrationDate = s.now().UTC()

	var webhookURL *string
	settings, err := s.settingsStore.Get()
	if err != nil {
		// Settings are only needed for the webhook URL; a read failure
		// must not block the registration.
		s.logger.Warn("failed to load settings, skipping CRM sync", zap.Error(err))
	} else {
		webhookURL = settings.WebhookURL
	}

	attendee.SyncedToCRM = s.crm.Send(ctx, &attendee, event, webhookURL)

	created, err := s.attendeeStore.Create(&attendee)
	if err != nil {
		return nil, err
	}

	s.logger.Info("attendee registered",
		zap.String("attendee_id", created.ID),
		zap.String("event_id", event.ID),
		zap.Bool("synced_to_crm", created.SyncedToCRM),
	)

	if s.mailer != nil {
		go func(to string, data email.ConfirmationData) {
			if err := s.mailer.SendRegistrationConfirmation(to, data); err != nil {
				s.logger.Warn("confirmation email failed", zap.String("to", to), zap.Error(err))
			}
		}(created.Email, email.ConfirmationData{
			FullName:      created.FullName,
			EventTitle:    event.Title,
			EventDate:     event.Date,
			EventLocation: event.Location,
		})
	}

	return created, nil
}

func (s *AttendeeService) GetAttendees(eventID, search string) ([]models.Attendee, error) {
	if _, err := s.eventStore.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if search != "" {
		return s.attendeeStore.SearchByEvent(eventID, search)
	}
	return s.attendeeStore.GetByEvent(eventID)
}

func (s *AttendeeService) UpdateAttendee(id string, req models.UpdateAttendeeRequest) (*models.Attendee, error) {
	attendee, err := s.attendeeStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		attendee.FullName = *req.FullName
	}
	if req.Email != nil {
		attendee.Email = *req.Email
	}
	if req.Phone != nil {
		attendee.Phone = *req.Phone
	}
	if req.Company != nil {
		attendee.Company = *req.Company
	}
	if req.SyncedToCRM != nil {
		attendee.SyncedToCRM = req.SyncedToCRM.Bool()
	}

	if err := s.attendeeStore.Update(attendee); err != nil {
		return nil, err
	}
	return attendee, nil
}

func (s *AttendeeService) DeleteAttendee(id string) error {
	if _, err := s.attendeeStore.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendeeNotFound
		}
		return err
	}
	return s.attendeeStore.Delete(id)
}

// ExportCSV renders the event's attendees as a CSV document. Fields are
// RFC-4180 quoted; column order matches the organizers' spreadsheet.
func (s *AttendeeService) ExportCSV(eventID string) ([]byte, error) {
	attendees, err := s.GetAttendees(eventID, "")
	if err != nil {
		return nil, err
	}

	rows := make([]models.AttendeeCSV, 0, len(attendees))
	for _, a := range attendees {
		rows = append(rows, models.AttendeeCSV{
			FullName: a.FullName,
			Email:    a.Email,
			Phone:    a.Phone,
			Company:  a.Company,
			Date:     a.RegistrationDate.Format("02/01/2006"),
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
