package storage

import "io"

// StorageService stores uploaded images and returns a public URL for them.
type StorageService interface {
	Upload(key string, contentType string, src io.Reader) (string, error)
	Delete(key string) error
}
