package dto

import (
	"time"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

// CreatePropertyRequest representa a requisição multipart para criar um
// imóvel. Os arquivos de imagem chegam fora deste struct (form files).
type CreatePropertyRequest struct {
	Title        string   `form:"title" binding:"required,max=255"`
	Description  *string  `form:"description"`
	PropertyType string   `form:"property_type" binding:"required,oneof=apartment house villa office land"`
	Status       string   `form:"status" binding:"required,oneof=available sold rented pending"`
	Price        float64  `form:"price" binding:"required,gte=0"`
	Area         float64  `form:"area" binding:"required,gte=0"`
	Bedrooms     *int     `form:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int     `form:"bathrooms" binding:"omitempty,gte=0"`
	Floors       *int     `form:"floors" binding:"omitempty,gte=1"`
	Address      string   `form:"address" binding:"required,max=500"`
	City         string   `form:"city" binding:"required,max=100"`
	District     string   `form:"district" binding:"required,max=100"`
	PostalCode   *string  `form:"postal_code" binding:"omitempty,max=20"`
	Latitude     *float64 `form:"latitude"`
	Longitude    *float64 `form:"longitude"`
	YearBuilt    *int     `form:"year_built" binding:"omitempty,gte=1800"`
	Features     []string `form:"features[]"`
	ContactName  string   `form:"contact_name" binding:"required,max=255"`
	ContactPhone string   `form:"contact_phone" binding:"required,max=20"`
	ContactEmail *string  `form:"contact_email" binding:"omitempty,email,max=255"`
}

// ToEntity converte a requisição em uma entidade Property
func (r *CreatePropertyRequest) ToEntity(createdBy *uint) *entities.Property {
	property := &entities.Property{
		Title:        r.Title,
		Description:  r.Description,
		PropertyType: entities.PropertyType(r.PropertyType),
		Status:       entities.PropertyStatus(r.Status),
		Price:        r.Price,
		Area:         r.Area,
		Bedrooms:     0,
		Bathrooms:    0,
		Floors:       1,
		Address:      r.Address,
		City:         r.City,
		District:     r.District,
		PostalCode:   r.PostalCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		YearBuilt:    r.YearBuilt,
		Features:     r.Features,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		CreatedBy:    createdBy,
		UpdatedBy:    createdBy,
	}

	if r.Bedrooms != nil {
		property.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		property.Bathrooms = *r.Bathrooms
	}
	if r.Floors != nil {
		property.Floors = *r.Floors
	}

	return property
}

// UpdatePropertyRequest representa a requisição de atualização parcial.
// Campos ausentes permanecem inalterados. Um eventual campo "images" no
// payload é ignorado: imagens têm endpoints próprios.
type UpdatePropertyRequest struct {
	Title        *string  `json:"title" binding:"omitempty,max=255"`
	Description  *string  `json:"description"`
	PropertyType *string  `json:"property_type" binding:"omitempty,oneof=apartment house villa office land"`
	Status       *string  `json:"status" binding:"omitempty,oneof=available sold rented pending"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Area         *float64 `json:"area" binding:"omitempty,gte=0"`
	Bedrooms     *int     `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms" binding:"omitempty,gte=0"`
	Floors       *int     `json:"floors" binding:"omitempty,gte=1"`
	Address      *string  `json:"address" binding:"omitempty,max=500"`
	City         *string  `json:"city" binding:"omitempty,max=100"`
	District     *string  `json:"district" binding:"omitempty,max=100"`
	PostalCode   *string  `json:"postal_code" binding:"omitempty,max=20"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	YearBuilt    *int     `json:"year_built" binding:"omitempty,gte=1800"`
	Features     []string `json:"features"`
	ContactName  *string  `json:"contact_name" binding:"omitempty,max=255"`
	ContactPhone *string  `json:"contact_phone" binding:"omitempty,max=20"`
	ContactEmail *string  `json:"contact_email" binding:"omitempty,email,max=255"`
}

// ToChanges converte a requisição no merge parcial do repository
func (r *UpdatePropertyRequest) ToChanges(updatedBy *uint) repositories.PropertyChanges {
	changes := repositories.PropertyChanges{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Area:         r.Area,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Floors:       r.Floors,
		Address:      r.Address,
		City:         r.City,
		District:     r.District,
		PostalCode:   r.PostalCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		YearBuilt:    r.YearBuilt,
		Features:     r.Features,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		UpdatedBy:    updatedBy,
	}

	if r.PropertyType != nil {
		t := entities.PropertyType(*r.PropertyType)
		changes.PropertyType = &t
	}
	if r.Status != nil {
		s := entities.PropertyStatus(*r.Status)
		changes.Status = &s
	}

	return changes
}

// ListPropertiesRequest representa os query params de listagem
type ListPropertiesRequest struct {
	City         *string  `form:"city"`
	Status       *string  `form:"status" binding:"omitempty,oneof=available sold rented pending"`
	PropertyType *string  `form:"property_type" binding:"omitempty,oneof=apartment house villa office land"`
	MinPrice     *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"max_price" binding:"omitempty,gte=0"`
	Page         int      `form:"page" binding:"omitempty,gte=1"`
	PerPage      int      `form:"per_page" binding:"omitempty,gte=1,lte=100"`
}

// ToFilters converte os query params nos filtros do repository
func (r *ListPropertiesRequest) ToFilters() repositories.PropertyFilters {
	filters := repositories.PropertyFilters{
		City:     r.City,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Page:     r.Page,
		PerPage:  r.PerPage,
	}

	if r.Status != nil {
		s := entities.PropertyStatus(*r.Status)
		filters.Status = &s
	}
	if r.PropertyType != nil {
		t := entities.PropertyType(*r.PropertyType)
		filters.PropertyType = &t
	}

	return filters
}

// PropertyListImage é a projeção reduzida de imagem na listagem
type PropertyListImage struct {
	ID        uint   `json:"id"`
	ImagePath string `json:"image_path"`
	IsPrimary bool   `json:"is_primary"`
}

// PropertyListItem é a projeção reduzida de um imóvel na listagem.
// O preço é truncado para inteiro apenas nesta visão.
type PropertyListItem struct {
	ID     uint                `json:"id"`
	Title  string              `json:"title"`
	Price  int64               `json:"price"`
	City   string              `json:"city"`
	Status string              `json:"status"`
	Images []PropertyListImage `json:"images"`
}

// PaginationMeta descreve a paginação de uma listagem
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

// PropertyListResponse é o corpo da listagem de imóveis
type PropertyListResponse struct {
	Data []PropertyListItem `json:"data"`
	Meta PaginationMeta     `json:"meta"`
}

// ToPropertyListResponse converte uma página do repository na resposta.
// Zero resultados produz data vazio com meta válido, nunca erro.
func ToPropertyListResponse(page *repositories.PropertyPage) PropertyListResponse {
	data := make([]PropertyListItem, 0, len(page.Properties))

	for _, property := range page.Properties {
		images := make([]PropertyListImage, 0, len(property.Images))
		for _, img := range property.Images {
			images = append(images, PropertyListImage{
				ID:        img.ID,
				ImagePath: img.ImagePath,
				IsPrimary: img.IsPrimary,
			})
		}

		data = append(data, PropertyListItem{
			ID:     property.ID,
			Title:  property.Title,
			Price:  int64(property.Price),
			City:   property.City,
			Status: string(property.Status),
			Images: images,
		})
	}

	return PropertyListResponse{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
			Total:       page.Total,
		},
	}
}

// PropertyDetailImage inclui o sort_order, ausente na listagem
type PropertyDetailImage struct {
	ID        uint   `json:"id"`
	ImagePath string `json:"image_path"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// Location agrupa latitude/longitude na visão de detalhe
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Contact agrupa os dados de contato na visão de detalhe
type Contact struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

// PropertyDetailResponse é a projeção completa de um imóvel.
// Preço e área são floats aqui: a visão de detalhe não trunca.
type PropertyDetailResponse struct {
	ID           uint                  `json:"id"`
	Title        string                `json:"title"`
	Description  *string               `json:"description"`
	PropertyType string                `json:"property_type"`
	Status       string                `json:"status"`
	Price        float64               `json:"price"`
	Area         float64               `json:"area"`
	Bedrooms     int                   `json:"bedrooms"`
	Bathrooms    int                   `json:"bathrooms"`
	Floors       int                   `json:"floors"`
	Address      string                `json:"address"`
	City         string                `json:"city"`
	District     string                `json:"district"`
	PostalCode   *string               `json:"postal_code"`
	Location     Location              `json:"location"`
	YearBuilt    *int                  `json:"year_built"`
	Features     []string              `json:"features"`
	Contact      Contact               `json:"contact"`
	Images       []PropertyDetailImage `json:"images"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToPropertyDetailResponse converte uma entidade na visão de detalhe
func ToPropertyDetailResponse(property *entities.Property) PropertyDetailResponse {
	images := make([]PropertyDetailImage, 0, len(property.Images))
	for _, img := range property.Images {
		images = append(images, PropertyDetailImage{
			ID:        img.ID,
			ImagePath: img.ImagePath,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}

	features := property.Features
	if features == nil {
		features = []string{}
	}

	return PropertyDetailResponse{
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
		Location: Location{
			Latitude:  property.Latitude,
			Longitude: property.Longitude,
		},
		YearBuilt: property.YearBuilt,
		Features:  features,
		Contact: Contact{
			Name:  property.ContactName,
			Phone: property.ContactPhone,
			Email: property.ContactEmail,
		},
		Images:    images,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}
