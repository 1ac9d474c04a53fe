package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/Govind-619/TurboLeague/storage"
	"github.com/Govind-619/TurboLeague/utils"
)

// UploadedFile describes a stored upload
type UploadedFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Name        string `json:"originalName"`
	ContentType string `json:"mimetype"`
	Size        int64  `json:"size"`
}

// UploadService validates files and hands them to the object store
type UploadService struct {
	store storage.ObjectStore
}

// NewUploadService creates an UploadService
func NewUploadService(store storage.ObjectStore) *UploadService {
	return &UploadService{store: store}
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return utils.BadRequestError(utils.ErrFileTooLarge, nil)
	case errors.Is(err, storage.ErrInvalidFileType):
		return utils.BadRequestError(utils.ErrInvalidFileType, nil)
	case errors.Is(err, storage.ErrInvalidKey):
		return utils.BadRequestError(utils.ErrFileKeyRequired, nil)
	}
	return utils.InternalError(utils.ErrFileUploadFailed, err)
}

// Upload stores one file under folder
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadedFile, error) {
	if file == nil {
		return nil, utils.BadRequestError(utils.ErrNoFileProvided, nil)
	}
	if err := storage.ValidateFile(file); err != nil {
		return nil, uploadError(err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, utils.InternalError(utils.ErrFileUploadFailed, err)
	}
	defer src.Close()

	key := storage.NewKey(folder, file.Filename)
	contentType := storage.ContentType(file)
	url, err := s.store.Put(ctx, key, contentType, src, file.Size)
	if err != nil {
		utils.LogError("Failed to store %s: %v", key, err)
		return nil, uploadError(err)
	}
	utils.LogInfo("Stored upload %s (%d bytes)", key, file.Size)
	return &UploadedFile{Key: key, URL: url, Name: file.Filename, ContentType: contentType, Size: file.Size}, nil
}

// UploadMany stores several files. Every file is validated before any is stored.
func (s *UploadService) UploadMany(ctx context.Context, files []*multipart.FileHeader, folder string) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, utils.BadRequestError(utils.ErrNoFilesProvided, nil)
	}
	for _, f := range files {
		if err := storage.ValidateFile(f); err != nil {
			return nil, uploadError(err)
		}
	}

	out := make([]UploadedFile, 0, len(files))
	for _, f := range files {
		uploaded, err := s.Upload(ctx, f, folder)
		if err != nil {
			return nil, err
		}
		out = append(out, *uploaded)
	}
	return out, nil
}

// Delete removes a file given its key or full URL
func (s *UploadService) Delete(ctx context.Context, keyOrURL string) error {
	key := storage.KeyFromURL(keyOrURL)
	if key == "" {
		return utils.BadRequestError(utils.ErrFileKeyRequired, nil)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		utils.LogError("Failed to delete %s: %v", key, err)
		return uploadError(err)
	}
	utils.LogInfo("Deleted upload %s", key)
	return nil
}
