package service

import (
	"testing"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestEventService(events *fakeEventStore, attendees *fakeAttendeeStore) *EventService {
	return NewEventService(events, attendees, zap.NewNop())
}

func TestCreateEvent_DefaultsActive(t *testing.T) {
	events := newFakeEventStore()
	svc := newTestEventService(events, newFakeAttendeeStore())

	created, err := svc.CreateEvent(models.EventRequest{
		Title:    "Tech Summit",
		Date:     "2026-10-01",
		Location: "São Paulo",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.Nil(t, created.Capacity)
}

func TestCreateEvent_ZeroCapacityIsKept(t *testing.T) {
	events := newFakeEventStore()
	svc := newTestEventService(events, newFakeAttendeeStore())

	created, err := svc.CreateEvent(models.EventRequest{
		Title:    "Invite Only",
		Date:     "2026-10-01",
		Location: "São Paulo",
		Capacity: capOf(0),
	})

	assert.NoError(t, err)
	if assert.NotNil(t, created.Capacity) {
		assert.Equal(t, int64(0), *created.Capacity)
	}

	// Zero capacity means sold out from the start, not unlimited.
	resp, err := svc.GetEvent(created.ID, true)
	assert.NoError(t, err)
	assert.True(t, resp.Stats.IsSoldOut)
}

func TestGetEvents_PublicListingHidesInactive(t *testing.T) {
	events := newFakeEventStore(
		&models.Event{ID: "e-1", Title: "Visible", Active: true},
		&models.Event{ID: "e-2", Title: "Hidden", Active: false},
	)
	svc := newTestEventService(events, newFakeAttendeeStore())

	public, err := svc.GetEvents(false)
	assert.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, "Visible", public[0].Title)

	all, err := svc.GetEvents(true)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetEvents_EmbedsStats(t *testing.T) {
	events := newFakeEventStore(&models.Event{ID: "e-1", Active: true, Capacity: capOf(10)})
	attendees := newFakeAttendeeStore(attendeesFor("e-1", 7)...)
	svc := newTestEventService(events, attendees)

	listed, err := svc.GetEvents(false)
	assert.NoError(t, err)
	if assert.Len(t, listed, 1) {
		assert.Equal(t, int64(7), listed[0].Stats.Count)
		assert.Equal(t, int64(3), *listed[0].Stats.SpotsLeft)
		assert.True(t, listed[0].Stats.IsUrgent)
	}
}

func TestGetEvent_PublicVsAdminVisibility(t *testing.T) {
	events := newFakeEventStore(&models.Event{ID: "e-1", Active: false})
	svc := newTestEventService(events, newFakeAttendeeStore())

	_, err := svc.GetEvent("e-1", false)
	assert.ErrorIs(t, err, ErrEventNotFound)

	found, err := svc.GetEvent("e-1", true)
	assert.NoError(t, err)
	assert.Equal(t, "e-1", found.ID)
}

func TestUpdateEvent_PatchesOnlyProvidedFields(t *testing.T) {
	events := newFakeEventStore(&models.Event{ID: "e-1", Title: "Old", Location: "Rio", Active: true})
	svc := newTestEventService(events, newFakeAttendeeStore())

	title := "New"
	inactive := models.FlexBool(false)
	updated, err := svc.UpdateEvent("e-1", models.UpdateEventRequest{Title: &title, Active: &inactive})

	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Rio", updated.Location)
	assert.False(t, updated.Active)

	_, err = svc.UpdateEvent("missing", models.UpdateEventRequest{})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent_CascadesToAttendees(t *testing.T) {
	events := newFakeEventStore(
		&models.Event{ID: "e-1", Active: true},
		&models.Event{ID: "e-2", Active: true},
	)
	attendees := newFakeAttendeeStore(
		&models.Attendee{ID: "a-1", EventID: "e-1"},
		&models.Attendee{ID: "a-2", EventID: "e-1"},
		&models.Attendee{ID: "a-3", EventID: "e-2"},
	)
	svc := newTestEventService(events, attendees)

	assert.NoError(t, svc.DeleteEvent("e-1"))

	count, _ := attendees.CountByEvent("e-1")
	assert.Zero(t, count, "attendees must not outlive their event")
	count, _ = attendees.CountByEvent("e-2")
	assert.Equal(t, int64(1), count, "other events keep their attendees")

	assert.ErrorIs(t, svc.DeleteEvent("e-1"), ErrEventNotFound)
}
