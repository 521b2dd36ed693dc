// Package images turns small uploaded images into inline data URLs, the
// storage-free path for event covers and the portal logo.
package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
)

// MaxSize caps uploads at 500KB; images are inlined into event records, so
// anything bigger would bloat every listing response.
const MaxSize = 500 * 1000

var (
	ErrTooLarge        = errors.New("image exceeds the 500KB limit")
	ErrUnsupportedType = errors.New("unsupported image type")
)

var supportedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Ingest validates the raw image bytes and encodes them as a data URL.
// Nothing ever leaves the process.
func Ingest(data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	mimeType := http.DetectContentType(data)
	if !supportedTypes[mimeType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
}

// DetectType exposes the sniffed mime type for callers that route uploads
// to external storage instead of inlining them.
func DetectType(data []byte) (string, error) {
	mimeType := http.DetectContentType(data)
	if !supportedTypes[mimeType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	return mimeType, nil
}
