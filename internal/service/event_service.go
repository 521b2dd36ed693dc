package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soesapp/soes-eventos-backend/internal/admission"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventService struct {
	eventStore    EventStore
	attendeeStore AttendeeStore
	logger        *zap.Logger
}

func NewEventService(eventStore EventStore, attendeeStore AttendeeStore, logger *zap.Logger) *EventService {
	return &EventService{
		eventStore:    eventStore,
		attendeeStore: attendeeStore,
		logger:        logger,
	}
}

func (s *EventService) CreateEvent(req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		Active:      true,
	}

	created, err := s.eventStore.Create(event)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event created", zap.String("event_id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// GetEvents returns events with their attendance stats. The public listing
// only sees active events.
func (s *EventService) GetEvents(includeInactive bool) ([]models.EventResponse, error) {
	var (
		events []models.Event
		err    error
	)
	if includeInactive {
		events, err = s.eventStore.GetAll()
	} else {
		events, err = s.eventStore.GetActive()
	}
	if err != nil {
		return nil, err
	}

	resp := make([]models.EventResponse, 0, len(events))
	for _, event := range events {
		count, err := s.attendeeStore.CountByEvent(event.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, models.EventResponse{
			Event: event,
			Stats: admission.ComputeStats(event.Capacity, count),
		})
	}
	return resp, nil
}

func (s *EventService) GetEvent(id string, includeInactive bool) (*models.EventResponse, error) {
	event, err := s.eventStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !event.Active && !includeInactive {
		return nil, ErrEventNotFound
	}

	count, err := s.attendeeStore.CountByEvent(event.ID)
	if err != nil {
		return nil, err
	}

	return &models.EventResponse{
		Event: *event,
		Stats: admission.ComputeStats(event.Capacity, count),
	}, nil
}

func (s *EventService) UpdateEvent(id string, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.ImageURL != nil {
		event.ImageURL = req.ImageURL
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}
	if req.Active != nil {
		event.Active = req.Active.Bool()
	}

	if err := s.eventStore.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes the event together with its attendees. Registrations
// never outlive their event.
func (s *EventService) DeleteEvent(id string) error {
	if _, err := s.eventStore.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if err := s.attendeeStore.DeleteByEvent(id); err != nil {
		return err
	}
	if err := s.eventStore.Delete(id); err != nil {
		return err
	}

	s.logger.Info("event deleted", zap.String("event_id", id))
	return nil
}
