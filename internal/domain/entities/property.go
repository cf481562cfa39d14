package entities

import (
	"fmt"
	"time"

	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
)

// PropertyType representa o tipo de um imóvel
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeVilla     PropertyType = "villa"
	TypeOffice    PropertyType = "office"
	TypeLand      PropertyType = "land"
)

// PropertyTypes lista todos os tipos válidos
var PropertyTypes = []PropertyType{
	TypeApartment,
	TypeHouse,
	TypeVilla,
	TypeOffice,
	TypeLand,
}

// IsValid verifica se o tipo é um dos valores do enum
func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// PropertyStatus representa o status de um imóvel
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusPending   PropertyStatus = "pending"
)

// PropertyStatuses lista todos os status válidos
var PropertyStatuses = []PropertyStatus{
	StatusAvailable,
	StatusSold,
	StatusRented,
	StatusPending,
}

// IsValid verifica se o status é um dos valores do enum
func (s PropertyStatus) IsValid() bool {
	for _, v := range PropertyStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Property representa um imóvel anunciado no sistema.
// Struct de dados pura: toda a lógica de consulta/mutação vive no repository.
type Property struct {
	ID           uint
	Title        string
	Description  *string
	PropertyType PropertyType
	Status       PropertyStatus
	Price        float64 // decimal(15,2), >= 0
	Area         float64 // decimal(10,2), >= 0
	Bedrooms     int
	Bathrooms    int
	Floors       int
	Address      string
	City         string
	District     string
	PostalCode   *string
	Latitude     *float64
	Longitude    *float64
	YearBuilt    *int
	Features     []string
	ContactName  string
	ContactPhone string
	ContactEmail *string
	CreatedBy    *uint
	UpdatedBy    *uint
	Images       []PropertyImage
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsDeleted verifica se o imóvel foi deletado (soft delete)
func (p *Property) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Validate valida as regras de negócio da entidade Property.
// Retorna *errors.FieldError identificando o campo inválido.
func (p *Property) Validate() error {
	if p.Title == "" {
		return &apperrors.FieldError{Field: "title", Message: "this field is required"}
	}

	if !p.PropertyType.IsValid() {
		return &apperrors.FieldError{Field: "property_type", Message: "invalid property type"}
	}

	if !p.Status.IsValid() {
		return &apperrors.FieldError{Field: "status", Message: "invalid status"}
	}

	if p.Price < 0 {
		return &apperrors.FieldError{Field: "price", Message: "must not be negative"}
	}

	if p.Area < 0 {
		return &apperrors.FieldError{Field: "area", Message: "must not be negative"}
	}

	if p.Bedrooms < 0 {
		return &apperrors.FieldError{Field: "bedrooms", Message: "must not be negative"}
	}

	if p.Bathrooms < 0 {
		return &apperrors.FieldError{Field: "bathrooms", Message: "must not be negative"}
	}

	if p.Floors < 1 {
		return &apperrors.FieldError{Field: "floors", Message: "must be at least 1"}
	}

	if p.YearBuilt != nil {
		if err := ValidateYearBuilt(*p.YearBuilt); err != nil {
			return err
		}
	}

	return nil
}

// ValidateYearBuilt valida o intervalo aceito para year_built.
// O limite superior é o ano corrente + 1 (imóveis em construção).
func ValidateYearBuilt(year int) error {
	maxYear := time.Now().Year() + 1
	if year < 1800 || year > maxYear {
		return &apperrors.FieldError{
			Field:   "year_built",
			Message: fmt.Sprintf("must be between 1800 and %d", maxYear),
		}
	}
	return nil
}

// PropertyImage representa uma imagem pertencente a exatamente um imóvel.
// Invariantes (mantidos pelo repository + imageorder):
//   - no máximo uma imagem por imóvel com is_primary = true
//   - sort_order define a ordem de exibição; empates resolvidos por id
type PropertyImage struct {
	ID         uint
	PropertyID uint
	ImagePath  string
	ImageName  string
	IsPrimary  bool
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
