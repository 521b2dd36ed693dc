package service

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/soesapp/soes-eventos-backend/pkg/images"
	"github.com/soesapp/soes-eventos-backend/pkg/storage"
	"go.uber.org/zap"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService stores uploaded event images and logos. With an object store
// configured it uploads and returns a public URL; without one it inlines the
// image as a data URL so the portal works with zero infrastructure.
type ImageService struct {
	store  storage.StorageService // nil when R2 is not configured
	logger *zap.Logger
}

func NewImageService(store storage.StorageService, logger *zap.Logger) *ImageService {
	return &ImageService{store: store, logger: logger}
}

func (s *ImageService) Ingest(data []byte) (string, error) {
	if len(data) > images.MaxSize {
		return "", images.ErrTooLarge
	}

	if s.store == nil {
		return images.Ingest(data)
	}

	mimeType, err := images.DetectType(data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("images/%s%s", uuid.NewString(), extensions[mimeType])
	url, err := s.store.Upload(key, mimeType, bytes.NewReader(data))
	if err != nil {
		// Object store trouble must not block the organizer; fall back
		// to the inline encoding.
		s.logger.Warn("image upload to object store failed, inlining", zap.Error(err))
		return images.Ingest(data)
	}

	s.logger.Info("image uploaded", zap.String("key", key))
	return url, nil
}
