package service

import (
	"testing"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetSettings_DefaultsWhenUnsaved(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{settings: models.DefaultSettings()}, zap.NewNop())

	settings, err := svc.GetSettings()

	assert.NoError(t, err)
	assert.Equal(t, "SOES Eventos", settings.AppName)
	assert.Equal(t, "#ec4899", settings.PrimaryColor)
	assert.Nil(t, settings.WebhookURL)
}

func TestGetPublicSettings_OmitsWebhookURL(t *testing.T) {
	store := &fakeSettingsStore{settings: models.Settings{
		AppName:      "Custom",
		PrimaryColor: "#000000",
		WebhookURL:   strOf("https://crm.example.com/hook"),
	}}
	svc := NewSettingsService(store, zap.NewNop())

	public, err := svc.GetPublicSettings()

	assert.NoError(t, err)
	assert.Equal(t, "Custom", public.AppName)
	assert.Equal(t, "#000000", public.PrimaryColor)
}

func TestUpdateSettings_Persists(t *testing.T) {
	store := &fakeSettingsStore{settings: models.DefaultSettings()}
	svc := NewSettingsService(store, zap.NewNop())

	updated, err := svc.UpdateSettings(models.SettingsRequest{
		AppName:      "Eventos Corp",
		PrimaryColor: "#123456",
		WebhookURL:   strOf("https://crm.example.com/hook"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Eventos Corp", updated.AppName)

	reloaded, err := svc.GetSettings()
	assert.NoError(t, err)
	assert.Equal(t, "Eventos Corp", reloaded.AppName)
	if assert.NotNil(t, reloaded.WebhookURL) {
		assert.Equal(t, "https://crm.example.com/hook", *reloaded.WebhookURL)
	}
}
