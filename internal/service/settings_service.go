package service

import (
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"go.uber.org/zap"
)

type SettingsService struct {
	settingsStore SettingsStore
	logger        *zap.Logger
}

func NewSettingsService(settingsStore SettingsStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsStore: settingsStore,
		logger:        logger,
	}
}

func (s *SettingsService) GetSettings() (*models.Settings, error) {
	return s.settingsStore.Get()
}

// GetPublicSettings returns the branding subset shown on the public portal.
func (s *SettingsService) GetPublicSettings() (*models.PublicSettings, error) {
	settings, err := s.settingsStore.Get()
	if err != nil {
		return nil, err
	}
	return &models.PublicSettings{
		AppName:      settings.AppName,
		PrimaryColor: settings.PrimaryColor,
		LogoURL:      settings.LogoURL,
	}, nil
}

func (s *SettingsService) UpdateSettings(req models.SettingsRequest) (*models.Settings, error) {
	settings, err := s.settingsStore.Get()
	if err != nil {
		return nil, err
	}

	settings.AppName = req.AppName
	settings.PrimaryColor = req.PrimaryColor
	settings.LogoURL = req.LogoURL
	settings.WebhookURL = req.WebhookURL

	if err := s.settingsStore.Save(settings); err != nil {
		return nil, err
	}

	s.logger.Info("settings updated", zap.String("app_name", settings.AppName))
	return settings, nil
}
