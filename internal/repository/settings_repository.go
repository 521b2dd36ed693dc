package repository

import (
	"errors"

	"github.com/soesapp/soes-eventos-backend/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, falling back to defaults when the
// row has never been saved.
func (r *SettingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(settings *models.Settings) error {
	settings.ID = 1
	return r.db.Save(settings).Error
}
