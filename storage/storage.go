// Package storage keeps uploaded files in S3 or, for development, on local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload limit
const MaxFileSize = 10 << 20

// DefaultFolder is used when an upload does not name a folder
const DefaultFolder = "uploads"

var (
	// ErrInvalidFileType is returned for content types outside AllowedMimeTypes
	ErrInvalidFileType = errors.New("invalid file type. Only images and documents are allowed")
	// ErrFileTooLarge is returned for files above MaxFileSize
	ErrFileTooLarge = errors.New("file size exceeds 10MB limit")
	// ErrInvalidKey is returned for keys that are empty or escape the store root
	ErrInvalidKey = errors.New("invalid file key")
)

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// AllowedMimeTypes lists the images and documents accepted for upload
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	mimeDocx:             true,
}

// ObjectStore saves and removes files by key and exposes them by public URL
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// ContentType returns the declared type of an uploaded file, falling back to
// the extension when the client sent none.
func ContentType(file *multipart.FileHeader) string {
	ct := file.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename))); byExt != "" {
			ct = byExt
		}
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return mediaType
	}
	return ct
}

// ValidateFile checks the size and type of an uploaded file
func ValidateFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	if !AllowedMimeTypes[ContentType(file)] {
		return ErrInvalidFileType
	}
	return nil
}

// NewKey builds "{folder}/{uuid}{ext}" for an uploaded file name
func NewKey(folder, filename string) string {
	folder = strings.Trim(path.Clean("/"+strings.TrimSpace(folder)), "/")
	if folder == "" {
		folder = DefaultFolder
	}
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
}

// KeyFromURL accepts either a bare key or a full object URL and returns the key
func KeyFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "amazonaws.com/"); i >= 0 {
		raw = raw[i+len("amazonaws.com/"):]
	}
	return strings.TrimLeft(raw, "/")
}

// cleanKey rejects keys that are empty or would escape the store root
func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
