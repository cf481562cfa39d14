package services

import (
	"context"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

// ImageService contém a lógica de negócio para imagens de imóveis
type ImageService struct {
	propertyRepo repositories.PropertyRepository
	storage      ports.FileStorage
	logger       ports.Logger
}

// NewImageService cria um novo ImageService
func NewImageService(
	propertyRepo repositories.PropertyRepository,
	storage ports.FileStorage,
	logger ports.Logger,
) *ImageService {
	return &ImageService{
		propertyRepo: propertyRepo,
		storage:      storage,
		logger:       logger,
	}
}

// UploadImages anexa imagens a um imóvel existente
func (s *ImageService) UploadImages(ctx context.Context, propertyID uint, uploads []ports.UploadedFile) (*entities.Property, error) {
	s.logger.Info("uploading images", "property_id", propertyID, "count", len(uploads))

	property, err := s.propertyRepo.UploadImages(ctx, propertyID, uploads)
	if err != nil {
		s.logger.Error("image upload failed", "property_id", propertyID, "error", err)
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}

	return property, nil
}

// SetPrimary marca a imagem como primária e desmarca as demais do imóvel
func (s *ImageService) SetPrimary(ctx context.Context, imageID uint) error {
	return s.mutate(ctx, imageID, "set primary", s.propertyRepo.SetPrimaryImage)
}

// RemovePrimary desmarca a imagem como primária
func (s *ImageService) RemovePrimary(ctx context.Context, imageID uint) error {
	return s.mutate(ctx, imageID, "remove primary", s.propertyRepo.RemovePrimaryImage)
}

// MoveUp move a imagem uma posição para cima na ordem de exibição
func (s *ImageService) MoveUp(ctx context.Context, imageID uint) error {
	return s.mutate(ctx, imageID, "move up", s.propertyRepo.MoveImageUp)
}

// MoveDown move a imagem uma posição para baixo na ordem de exibição
func (s *ImageService) MoveDown(ctx context.Context, imageID uint) error {
	return s.mutate(ctx, imageID, "move down", s.propertyRepo.MoveImageDown)
}

// DeleteImage remove o registro da imagem e o arquivo armazenado
func (s *ImageService) DeleteImage(ctx context.Context, imageID uint) error {
	image, err := s.propertyRepo.FindImage(ctx, imageID)
	if err != nil {
		s.logger.Error("image lookup failed", "image_id", imageID, "error", err)
		return err
	}
	if image == nil {
		return errors.ErrImageNotFound
	}

	if err := s.mutate(ctx, imageID, "delete", s.propertyRepo.DeleteImage); err != nil {
		return err
	}

	// Remoção do arquivo é best-effort: o registro já foi removido
	if err := s.storage.Delete(ctx, image.ImagePath); err != nil {
		s.logger.Error("image file removal failed",
			"image_id", imageID, "path", image.ImagePath, "error", err)
	}

	return nil
}

func (s *ImageService) mutate(ctx context.Context, imageID uint, op string, fn func(context.Context, uint) (bool, error)) error {
	found, err := fn(ctx, imageID)
	if err != nil {
		s.logger.Error("image mutation failed", "op", op, "image_id", imageID, "error", err)
		return err
	}
	if !found {
		return errors.ErrImageNotFound
	}

	s.logger.Info("image mutated", "op", op, "image_id", imageID)
	return nil
}
