package models

import (
	"time"

	"github.com/soesapp/soes-eventos-backend/internal/admission"
)

type Event struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        string    `json:"date" gorm:"not null"` // ISO date string, stored as given
	Location    string    `json:"location" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Capacity    *int64    `json:"capacity,omitempty"` // nil = unlimited, 0 = zero slots
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
	Capacity    *int64  `json:"capacity" validate:"omitempty,gte=0"`
}

type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        *string   `json:"date"`
	Location    *string   `json:"location"`
	ImageURL    *string   `json:"imageUrl"`
	Capacity    *int64    `json:"capacity" validate:"omitempty,gte=0"`
	Active      *FlexBool `json:"active"`
}

// EventResponse embeds the attendance stats every view needs, so the
// sold-out/urgency math lives in one place instead of per call site.
type EventResponse struct {
	Event
	Stats admission.Stats `json:"stats"`
}
