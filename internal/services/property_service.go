package services

import (
	"context"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

// PropertyService contém a lógica de negócio para imóveis
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	logger       ports.Logger
}

// NewPropertyService cria um novo PropertyService
func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	logger ports.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// ListProperties lista imóveis com filtros e paginação.
// Zero resultados não é erro: retorna página vazia com meta válido.
func (s *PropertyService) ListProperties(ctx context.Context, filters repositories.PropertyFilters) (*repositories.PropertyPage, error) {
	page, err := s.propertyRepo.List(ctx, filters)
	if err != nil {
		s.logger.Error("property list failed", "error", err)
		return nil, err
	}
	return page, nil
}

// GetProperty busca um imóvel por ID com suas imagens
func (s *PropertyService) GetProperty(ctx context.Context, id uint) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("property detail failed", "property_id", id, "error", err)
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return property, nil
}

// CreateProperty cria um novo imóvel com imagens opcionais
func (s *PropertyService) CreateProperty(ctx context.Context, property *entities.Property, uploads []ports.UploadedFile) (*entities.Property, error) {
	if err := property.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("creating property",
		"title", property.Title,
		"city", property.City,
		"images", len(uploads),
	)

	if err := s.propertyRepo.Create(ctx, property, uploads); err != nil {
		s.logger.Error("property creation failed", "error", err)
		return nil, err
	}

	return property, nil
}

// UpdateProperty aplica merge parcial nos campos escalares do imóvel.
// Imagens presentes no payload são ignoradas por este caminho.
func (s *PropertyService) UpdateProperty(ctx context.Context, id uint, changes repositories.PropertyChanges) (*entities.Property, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.Update(ctx, id, changes)
	if err != nil {
		s.logger.Error("property update failed", "property_id", id, "error", err)
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}

	s.logger.Info("property updated", "property_id", id)
	return property, nil
}

// DeleteProperty remove as imagens do imóvel e o marca como deletado
func (s *PropertyService) DeleteProperty(ctx context.Context, id uint) error {
	found, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("property deletion failed", "property_id", id, "error", err)
		return err
	}
	if !found {
		return errors.ErrPropertyNotFound
	}

	s.logger.Info("property deleted", "property_id", id)
	return nil
}
