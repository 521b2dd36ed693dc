package service

import (
	"context"
	"strings"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/pkg/email"
	"gorm.io/gorm"
)

// In-memory stores backing the service tests. Missing records surface as
// gorm.ErrRecordNotFound, matching what the repositories return.

type fakeEventStore struct {
	events map[string]*models.Event
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	s := &fakeEventStore{events: make(map[string]*models.Event)}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeEventStore) Create(event *models.Event) (*models.Event, error) {
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventStore) GetByID(id string) (*models.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *fakeEventStore) GetAll() ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEventStore) GetActive() ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEventStore) Update(event *models.Event) error {
	s.events[event.ID] = event
	return nil
}

func (s *fakeEventStore) Delete(id string) error {
	delete(s.events, id)
	return nil
}

type fakeAttendeeStore struct {
	attendees map[string]*models.Attendee
}

func newFakeAttendeeStore(attendees ...*models.Attendee) *fakeAttendeeStore {
	s := &fakeAttendeeStore{attendees: make(map[string]*models.Attendee)}
	for _, a := range attendees {
		s.attendees[a.ID] = a
	}
	return s
}

func (s *fakeAttendeeStore) Create(attendee *models.Attendee) (*models.Attendee, error) {
	s.attendees[attendee.ID] = attendee
	return attendee, nil
}

func (s *fakeAttendeeStore) GetByID(id string) (*models.Attendee, error) {
	attendee, ok := s.attendees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *attendee
	return &copied, nil
}

func (s *fakeAttendeeStore) GetByEvent(eventID string) ([]models.Attendee, error) {
	var out []models.Attendee
	for _, a := range s.attendees {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAttendeeStore) SearchByEvent(eventID, query string) ([]models.Attendee, error) {
	query = strings.ToLower(query)
	var out []models.Attendee
	for _, a := range s.attendees {
		if a.EventID != eventID {
			continue
		}
		if strings.Contains(strings.ToLower(a.FullName), query) ||
			strings.Contains(strings.ToLower(a.Email), query) ||
			strings.Contains(strings.ToLower(a.Company), query) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAttendeeStore) CountByEvent(eventID string) (int64, error) {
	var count int64
	for _, a := range s.attendees {
		if a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (s *fakeAttendeeStore) Update(attendee *models.Attendee) error {
	s.attendees[attendee.ID] = attendee
	return nil
}

func (s *fakeAttendeeStore) Delete(id string) error {
	delete(s.attendees, id)
	return nil
}

func (s *fakeAttendeeStore) DeleteByEvent(eventID string) error {
	for id, a := range s.attendees {
		if a.EventID == eventID {
			delete(s.attendees, id)
		}
	}
	return nil
}

type fakeSettingsStore struct {
	settings models.Settings
	getErr   error
}

func (s *fakeSettingsStore) Get() (*models.Settings, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := s.settings
	return &copied, nil
}

func (s *fakeSettingsStore) Save(settings *models.Settings) error {
	s.settings = *settings
	return nil
}

// fakeCRM records sync attempts and answers with a fixed delivery result.
type fakeCRM struct {
	delivered bool
	calls     int
	lastURL   *string
}

func (c *fakeCRM) Send(_ context.Context, _ *models.Attendee, _ *models.Event, webhookURL *string) bool {
	c.calls++
	c.lastURL = webhookURL
	if webhookURL == nil || *webhookURL == "" {
		return false
	}
	return c.delivered
}

type fakeMailer struct {
	sent chan email.ConfirmationData
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan email.ConfirmationData, 1)}
}

func (m *fakeMailer) SendRegistrationConfirmation(_ string, data email.ConfirmationData) error {
	m.sent <- data
	return nil
}
