package models

const (
	DefaultAppName      = "SOES Eventos"
	DefaultPrimaryColor = "#ec4899"
)

// Settings is a singleton row; ID is always 1.
type Settings struct {
	ID           uint    `json:"-" gorm:"primaryKey"`
	AppName      string  `json:"appName"`
	PrimaryColor string  `json:"primaryColor"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	WebhookURL   *string `json:"webhookUrl,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		ID:           1,
		AppName:      DefaultAppName,
		PrimaryColor: DefaultPrimaryColor,
	}
}

type SettingsRequest struct {
	AppName      string  `json:"appName" validate:"required"`
	PrimaryColor string  `json:"primaryColor" validate:"required,hexcolor"`
	LogoURL      *string `json:"logoUrl"`
	WebhookURL   *string `json:"webhookUrl" validate:"omitempty,url"`
}

// PublicSettings is the branding subset exposed without authentication.
// The webhook URL stays admin-only.
type PublicSettings struct {
	AppName      string  `json:"appName"`
	PrimaryColor string  `json:"primaryColor"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}
