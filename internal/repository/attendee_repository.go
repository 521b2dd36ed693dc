package repository

import (
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"gorm.io/gorm"
)

type AttendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) Create(attendee *models.Attendee) (*models.Attendee, error) {
	result := r.db.Create(attendee)
	if result.Error != nil {
		return nil, result.Error
	}
	return attendee, nil
}

func (r *AttendeeRepository) GetByID(id string) (*models.Attendee, error) {
	var attendee models.Attendee
	err := r.db.First(&attendee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (r *AttendeeRepository) GetByEvent(eventID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	err := r.db.Where("event_id = ?", eventID).Order("registration_date ASC").Find(&attendees).Error
	return attendees, err
}

// SearchByEvent filters the event's attendees by name, email, or company.
func (r *AttendeeRepository) SearchByEvent(eventID, query string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	pattern := "%" + query + "%"
	err := r.db.Where("event_id = ?", eventID).
		Where("full_name ILIKE ? OR email ILIKE ? OR company ILIKE ?", pattern, pattern, pattern).
		Order("registration_date ASC").
		Find(&attendees).Error
	return attendees, err
}

// CountByEvent returns the number of registrations for the event, read fresh
// from the database. The admission gate always recounts through this.
func (r *AttendeeRepository) CountByEvent(eventID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Attendee{}).Where("event_id = ?", eventID).Count(&count)
	return count, result.Error
}

func (r *AttendeeRepository) Update(attendee *models.Attendee) error {
	return r.db.Save(attendee).Error
}

func (r *AttendeeRepository) Delete(id string) error {
	return r.db.Delete(&models.Attendee{}, "id = ?", id).Error
}

func (r *AttendeeRepository) DeleteByEvent(eventID string) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Attendee{}).Error
}
