package room

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/maenko-m/meeting-management-backend/internal/office"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/storage"
)

const maxPhotoBytes = 10 << 20

type CreateRequest struct {
	OfficeID     string
	Name         string
	Size         int
	IsPublic     bool
	Description  string
	CalendarCode string
}

type UpdateRequest struct {
	Name         *string
	Size         *int
	IsActive     *bool
	IsPublic     *bool
	Description  *string
	CalendarCode *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error

	UploadPhoto(ctx context.Context, roomID string, header *multipart.FileHeader) (*Photo, error)
	OpenPhoto(ctx context.Context, photoID string, thumbnail bool) (io.ReadCloser, *Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
}

type service struct {
	repo          Repository
	officeService office.Service
	storage       storage.Storage
	imgProc       *storage.ImageProcessor
}

func NewService(repo Repository, officeService office.Service, store storage.Storage) Service {
	return &service{
		repo:          repo,
		officeService: officeService,
		storage:       store,
		imgProc:       storage.NewImageProcessor(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if _, err := s.officeService.GetByID(ctx, req.OfficeID); err != nil {
		return nil, ErrInvalidOffice
	}

	rm := &Room{
		OfficeID:     req.OfficeID,
		Name:         req.Name,
		Size:         req.Size,
		IsActive:     true,
		IsPublic:     req.IsPublic,
		Description:  req.Description,
		CalendarCode: req.CalendarCode,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		rm.Name = *req.Name
	}
	if req.Size != nil {
		if *req.Size <= 0 {
			return nil, ErrInvalidSize
		}
		rm.Size = *req.Size
	}
	if req.IsActive != nil {
		rm.IsActive = *req.IsActive
	}
	if req.IsPublic != nil {
		rm.IsPublic = *req.IsPublic
	}
	if req.Description != nil {
		rm.Description = *req.Description
	}
	if req.CalendarCode != nil {
		rm.CalendarCode = *req.CalendarCode
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) UploadPhoto(ctx context.Context, roomID string, header *multipart.FileHeader) (*Photo, error) {
	if _, err := s.repo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	if header.Size > maxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, ErrPhotoBadFormat
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer src.Close()

	// Buffer for the two passes: original save and thumbnail generation.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo content: %w", err)
	}

	photoID := uuid.New().String()
	shard := photoID[:2]
	path := fmt.Sprintf("rooms/%s/%s%s", shard, photoID, ext)
	thumbPath := fmt.Sprintf("rooms/%s/%s_thumb.jpg", shard, photoID)

	thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(content), 400, 400)
	if err != nil {
		return nil, ErrPhotoBadFormat
	}

	if err := s.storage.Save(ctx, path, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	if err := s.storage.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.storage.Delete(ctx, path)
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	photo := &Photo{
		ID:            photoID,
		RoomID:        roomID,
		Path:          path,
		ThumbnailPath: thumbPath,
	}
	if err := s.repo.AddPhoto(ctx, photo); err != nil {
		_ = s.storage.Delete(ctx, path)
		_ = s.storage.Delete(ctx, thumbPath)
		return nil, err
	}

	return photo, nil
}

func (s *service) OpenPhoto(ctx context.Context, photoID string, thumbnail bool) (io.ReadCloser, *Photo, error) {
	photo, err := s.repo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, nil, err
	}

	path := photo.Path
	if thumbnail {
		path = photo.ThumbnailPath
	}

	rc, err := s.storage.Get(ctx, path)
	if err != nil {
		return nil, nil, ErrPhotoNotFound
	}
	return rc, photo, nil
}

func (s *service) DeletePhoto(ctx context.Context, photoID string) error {
	photo, err := s.repo.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	_ = s.storage.Delete(ctx, photo.Path)
	_ = s.storage.Delete(ctx, photo.ThumbnailPath)
	return nil
}
