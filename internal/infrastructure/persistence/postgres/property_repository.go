package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/imageorder"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

// storageDir é o subdiretório do FileStorage onde ficam as imagens de imóveis
const storageDir = "properties"

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	db      *gorm.DB
	storage ports.FileStorage
}

// NewPropertyRepository cria um novo PropertyRepository
func NewPropertyRepository(db *gorm.DB, storage ports.FileStorage) repositories.PropertyRepository {
	return &PropertyRepository{db: db, storage: storage}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property, uploads []ports.UploadedFile) error {
	model, err := r.toModel(property)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	syncGenerated(property, model)

	// Imagens são anexadas na ordem recebida: a primeira vira primária.
	// Sem rollback em falha parcial: linhas já criadas permanecem.
	for i, upload := range uploads {
		path, err := r.storage.Store(ctx, storageDir, upload)
		if err != nil {
			return err
		}

		image := &PropertyImageModel{
			PropertyID: model.ID,
			ImagePath:  path,
			ImageName:  upload.Name,
			IsPrimary:  i == 0,
			SortOrder:  i + 1,
		}
		if err := db.Create(image).Error; err != nil {
			return err
		}
	}

	return r.reloadImages(ctx, property)
}

func (r *PropertyRepository) List(ctx context.Context, filters repositories.PropertyFilters) (*repositories.PropertyPage, error) {
	db := r.getDB(ctx)
	query := db.Model(&PropertyModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	// Aplicar filtros
	if filters.City != nil {
		query = query.Where("city = ?", *filters.City)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.PropertyType != nil {
		query = query.Where("property_type = ?", string(*filters.PropertyType))
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 {
		perPage = 10
	}

	lastPage := repositories.LastPage(total, perPage)

	var models []*PropertyModel
	offset := (page - 1) * perPage
	err := query.
		Preload("Images", imageDisplayOrder).
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	properties, err := r.toEntities(models)
	if err != nil {
		return nil, err
	}

	return &repositories.PropertyPage{
		Properties:  properties,
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
	}, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint) (*entities.Property, error) {
	var model PropertyModel

	db := r.getDB(ctx)
	err := db.
		Preload("Images", imageDisplayOrder).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PropertyRepository) Update(ctx context.Context, id uint, changes repositories.PropertyChanges) (*entities.Property, error) {
	db := r.getDB(ctx)

	var model PropertyModel
	err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	values, err := changesToValues(changes)
	if err != nil {
		return nil, err
	}

	if len(values) > 0 {
		if err := db.Model(&model).Updates(values).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, id)
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) (bool, error) {
	db := r.getDB(ctx)

	var model PropertyModel
	err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	// Duas fases em uma transação: hard delete das filhas,
	// soft delete do pai. O soft delete não dispara o cascade do banco.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&PropertyImageModel{}).Error; err != nil {
			return err
		}

		now := time.Now().Unix()
		return tx.Model(&PropertyModel{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *PropertyRepository) UploadImages(ctx context.Context, propertyID uint, uploads []ports.UploadedFile) (*entities.Property, error) {
	db := r.getDB(ctx)

	var model PropertyModel
	err := db.Where("id = ? AND deleted_at IS NULL", propertyID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	existing, err := r.loadImages(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	nextOrder := imageorder.NextSortOrder(existing)
	hasPrimary := imageorder.HasPrimary(existing)

	for i, upload := range uploads {
		path, err := r.storage.Store(ctx, storageDir, upload)
		if err != nil {
			return nil, err
		}

		image := &PropertyImageModel{
			PropertyID: propertyID,
			ImagePath:  path,
			ImageName:  upload.Name,
			IsPrimary:  !hasPrimary && i == 0,
			SortOrder:  nextOrder + i,
		}
		if err := db.Create(image).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, propertyID)
}

func (r *PropertyRepository) FindImage(ctx context.Context, imageID uint) (*entities.PropertyImage, error) {
	var model PropertyImageModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", imageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	image := toImageEntity(&model)
	return &image, nil
}

func (r *PropertyRepository) SetPrimaryImage(ctx context.Context, imageID uint) (bool, error) {
	return r.reorder(ctx, imageID, imageorder.PlanSetPrimary)
}

func (r *PropertyRepository) RemovePrimaryImage(ctx context.Context, imageID uint) (bool, error) {
	return r.reorder(ctx, imageID, imageorder.PlanRemovePrimary)
}

func (r *PropertyRepository) MoveImageUp(ctx context.Context, imageID uint) (bool, error) {
	return r.reorder(ctx, imageID, imageorder.PlanMoveUp)
}

func (r *PropertyRepository) MoveImageDown(ctx context.Context, imageID uint) (bool, error) {
	return r.reorder(ctx, imageID, imageorder.PlanMoveDown)
}

func (r *PropertyRepository) DeleteImage(ctx context.Context, imageID uint) (bool, error) {
	db := r.getDB(ctx)

	result := db.Where("id = ?", imageID).Delete(&PropertyImageModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// reorder executa uma operação de ordenação: carrega o snapshot das imagens
// do mesmo imóvel, pede ao planner as mutações, aplica tudo em uma transação.
// Transação necessária contra reordenações concorrentes do mesmo imóvel.
func (r *PropertyRepository) reorder(ctx context.Context, imageID uint, plan func([]entities.PropertyImage, uint) []imageorder.Update) (bool, error) {
	db := r.getDB(ctx)

	found := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var target PropertyImageModel
		err := tx.Where("id = ?", imageID).First(&target).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var siblings []PropertyImageModel
		err = tx.Where("property_id = ?", target.PropertyID).
			Order("sort_order ASC, id ASC").
			Find(&siblings).Error
		if err != nil {
			return err
		}

		snapshot := make([]entities.PropertyImage, len(siblings))
		for i := range siblings {
			snapshot[i] = toImageEntity(&siblings[i])
		}

		for _, u := range plan(snapshot, imageID) {
			values := map[string]interface{}{}
			if u.IsPrimary != nil {
				values["is_primary"] = *u.IsPrimary
			}
			if u.SortOrder != nil {
				values["sort_order"] = *u.SortOrder
			}
			if len(values) == 0 {
				continue
			}
			err := tx.Model(&PropertyImageModel{}).
				Where("id = ?", u.ImageID).
				Updates(values).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// imageDisplayOrder aplica a ordem de exibição ao preload de imagens
func imageDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, sort_order ASC, id ASC")
}

func (r *PropertyRepository) loadImages(ctx context.Context, propertyID uint) ([]entities.PropertyImage, error) {
	var models []PropertyImageModel

	db := r.getDB(ctx)
	err := db.Where("property_id = ?", propertyID).
		Order("sort_order ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	images := make([]entities.PropertyImage, len(models))
	for i := range models {
		images[i] = toImageEntity(&models[i])
	}
	return images, nil
}

func (r *PropertyRepository) reloadImages(ctx context.Context, property *entities.Property) error {
	var models []PropertyImageModel

	db := r.getDB(ctx)
	err := db.Where("property_id = ?", property.ID).
		Order("is_primary DESC, sort_order ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return err
	}

	property.Images = make([]entities.PropertyImage, len(models))
	for i := range models {
		property.Images[i] = toImageEntity(&models[i])
	}
	return nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PropertyRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// syncGenerated copia de volta para a entidade os campos preenchidos pelo
// banco no insert (id e timestamps de autoCreateTime/autoUpdateTime).
// Sem isso a resposta 201 sairia com timestamps zerados.
func syncGenerated(property *entities.Property, model *PropertyModel) {
	property.ID = model.ID
	property.CreatedAt = time.Unix(model.CreatedAt, 0)
	property.UpdatedAt = time.Unix(model.UpdatedAt, 0)
}

// Conversores

func (r *PropertyRepository) toModel(property *entities.Property) (*PropertyModel, error) {
	var features *string
	if property.Features != nil {
		data, err := json.Marshal(property.Features)
		if err != nil {
			return nil, err
		}
		s := string(data)
		features = &s
	}

	var deletedAt *int64
	if property.DeletedAt != nil {
		ts := property.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &PropertyModel{
		ID:           property.ID,
		Title:        property.Title,
		Description:  property.Description,
		PropertyType: string(property.PropertyType),
		Status:       string(property.Status),
		Price:        property.Price,
		Area:         property.Area,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Floors:       property.Floors,
		Address:      property.Address,
		City:         property.City,
		District:     property.District,
		PostalCode:   property.PostalCode,
		Latitude:     property.Latitude,
		Longitude:    property.Longitude,
		YearBuilt:    property.YearBuilt,
		Features:     features,
		ContactName:  property.ContactName,
		ContactPhone: property.ContactPhone,
		ContactEmail: property.ContactEmail,
		CreatedBy:    property.CreatedBy,
		UpdatedBy:    property.UpdatedBy,
		DeletedAt:    deletedAt,
	}, nil
}

func (r *PropertyRepository) toEntity(model *PropertyModel) (*entities.Property, error) {
	var features []string
	if model.Features != nil && *model.Features != "" {
		if err := json.Unmarshal([]byte(*model.Features), &features); err != nil {
			return nil, err
		}
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	images := make([]entities.PropertyImage, len(model.Images))
	for i := range model.Images {
		images[i] = toImageEntity(&model.Images[i])
	}

	return &entities.Property{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		PropertyType: entities.PropertyType(model.PropertyType),
		Status:       entities.PropertyStatus(model.Status),
		Price:        model.Price,
		Area:         model.Area,
		Bedrooms:     model.Bedrooms,
		Bathrooms:    model.Bathrooms,
		Floors:       model.Floors,
		Address:      model.Address,
		City:         model.City,
		District:     model.District,
		PostalCode:   model.PostalCode,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		YearBuilt:    model.YearBuilt,
		Features:     features,
		ContactName:  model.ContactName,
		ContactPhone: model.ContactPhone,
		ContactEmail: model.ContactEmail,
		CreatedBy:    model.CreatedBy,
		UpdatedBy:    model.UpdatedBy,
		Images:       images,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
		DeletedAt:    deletedAt,
	}, nil
}

func (r *PropertyRepository) toEntities(models []*PropertyModel) ([]*entities.Property, error) {
	properties := make([]*entities.Property, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		properties = append(properties, entity)
	}

	return properties, nil
}

func toImageEntity(model *PropertyImageModel) entities.PropertyImage {
	return entities.PropertyImage{
		ID:         model.ID,
		PropertyID: model.PropertyID,
		ImagePath:  model.ImagePath,
		ImageName:  model.ImageName,
		IsPrimary:  model.IsPrimary,
		SortOrder:  model.SortOrder,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}

// changesToValues converte o merge parcial em um map de colunas para Updates
func changesToValues(changes repositories.PropertyChanges) (map[string]interface{}, error) {
	values := map[string]interface{}{}

	if changes.Title != nil {
		values["title"] = *changes.Title
	}
	if changes.Description != nil {
		values["description"] = *changes.Description
	}
	if changes.PropertyType != nil {
		values["property_type"] = string(*changes.PropertyType)
	}
	if changes.Status != nil {
		values["status"] = string(*changes.Status)
	}
	if changes.Price != nil {
		values["price"] = *changes.Price
	}
	if changes.Area != nil {
		values["area"] = *changes.Area
	}
	if changes.Bedrooms != nil {
		values["bedrooms"] = *changes.Bedrooms
	}
	if changes.Bathrooms != nil {
		values["bathrooms"] = *changes.Bathrooms
	}
	if changes.Floors != nil {
		values["floors"] = *changes.Floors
	}
	if changes.Address != nil {
		values["address"] = *changes.Address
	}
	if changes.City != nil {
		values["city"] = *changes.City
	}
	if changes.District != nil {
		values["district"] = *changes.District
	}
	if changes.PostalCode != nil {
		values["postal_code"] = *changes.PostalCode
	}
	if changes.Latitude != nil {
		values["latitude"] = *changes.Latitude
	}
	if changes.Longitude != nil {
		values["longitude"] = *changes.Longitude
	}
	if changes.YearBuilt != nil {
		values["year_built"] = *changes.YearBuilt
	}
	if changes.Features != nil {
		data, err := json.Marshal(changes.Features)
		if err != nil {
			return nil, err
		}
		values["features"] = string(data)
	}
	if changes.ContactName != nil {
		values["contact_name"] = *changes.ContactName
	}
	if changes.ContactPhone != nil {
		values["contact_phone"] = *changes.ContactPhone
	}
	if changes.ContactEmail != nil {
		values["contact_email"] = *changes.ContactEmail
	}
	if changes.UpdatedBy != nil {
		values["updated_by"] = *changes.UpdatedBy
	}

	return values, nil
}
