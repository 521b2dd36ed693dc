package models

import "time"

type Attendee struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EventID          string    `json:"eventId" gorm:"index;not null;type:varchar(36)"`
	FullName         string    `json:"fullName" gorm:"not null"`
	Email            string    `json:"email" gorm:"not null"`
	Phone            string    `json:"phone" gorm:"not null"`
	Company          string    `json:"company" gorm:"not null"`
	RegistrationDate time.Time `json:"registrationDate"`
	SyncedToCRM      bool      `json:"syncedToCrm" gorm:"default:false"`
}

// RegistrationRequest is the public self-registration form. Email is entered
// twice and must match exactly; no normalization is applied.
type RegistrationRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	ConfirmEmail string `json:"confirmEmail" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Company      string `json:"company" validate:"required"`
}

// AttendeeRequest is the admin manual-entry form.
type AttendeeRequest struct {
	EventID  string `json:"eventId" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Company  string `json:"company" validate:"required"`
}

type UpdateAttendeeRequest struct {
	FullName    *string   `json:"fullName"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	SyncedToCRM *FlexBool `json:"syncedToCrm"`
}

// AttendeeCSV is the export row shape. Column order matches the spreadsheet
// the organizers already work with.
type AttendeeCSV struct {
	FullName string `csv:"Nome"`
	Email    string `csv:"Email"`
	Phone    string `csv:"Telefone"`
	Company  string `csv:"Empresa"`
	Date     string `csv:"Data"`
}
