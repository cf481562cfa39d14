package repositories

import (
	"context"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
)

// PropertyFilters contém filtros para listagem de imóveis.
// Campos nil não são aplicados à query.
type PropertyFilters struct {
	City         *string
	Status       *entities.PropertyStatus
	PropertyType *entities.PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	Page         int // Página (começa em 1)
	PerPage      int // Itens por página (default: 10)
}

// PropertyPage é o resultado paginado de uma listagem
type PropertyPage struct {
	Properties  []*entities.Property
	CurrentPage int
	LastPage    int
	Total       int64
}

// PropertyChanges contém as alterações parciais de um update.
// Campos nil permanecem inalterados. Imagens nunca são alteradas por
// este caminho: o gerenciamento de imagens tem operações próprias.
type PropertyChanges struct {
	Title        *string
	Description  *string
	PropertyType *entities.PropertyType
	Status       *entities.PropertyStatus
	Price        *float64
	Area         *float64
	Bedrooms     *int
	Bathrooms    *int
	Floors       *int
	Address      *string
	City         *string
	District     *string
	PostalCode   *string
	Latitude     *float64
	Longitude    *float64
	YearBuilt    *int
	Features     []string
	ContactName  *string
	ContactPhone *string
	ContactEmail *string
	UpdatedBy    *uint
}

// Validate valida os campos presentes no merge parcial. Regras que o
// binding não cobre (limite superior de year_built) são verificadas aqui
// antes de qualquer escrita.
func (c PropertyChanges) Validate() error {
	if c.Title != nil && *c.Title == "" {
		return &errors.FieldError{Field: "title", Message: "this field is required"}
	}

	if c.PropertyType != nil && !c.PropertyType.IsValid() {
		return &errors.FieldError{Field: "property_type", Message: "invalid property type"}
	}

	if c.Status != nil && !c.Status.IsValid() {
		return &errors.FieldError{Field: "status", Message: "invalid status"}
	}

	if c.Price != nil && *c.Price < 0 {
		return &errors.FieldError{Field: "price", Message: "must not be negative"}
	}

	if c.Area != nil && *c.Area < 0 {
		return &errors.FieldError{Field: "area", Message: "must not be negative"}
	}

	if c.Bedrooms != nil && *c.Bedrooms < 0 {
		return &errors.FieldError{Field: "bedrooms", Message: "must not be negative"}
	}

	if c.Bathrooms != nil && *c.Bathrooms < 0 {
		return &errors.FieldError{Field: "bathrooms", Message: "must not be negative"}
	}

	if c.Floors != nil && *c.Floors < 1 {
		return &errors.FieldError{Field: "floors", Message: "must be at least 1"}
	}

	if c.YearBuilt != nil {
		if err := entities.ValidateYearBuilt(*c.YearBuilt); err != nil {
			return err
		}
	}

	return nil
}

// PropertyRepository define a interface para persistência de imóveis e
// suas imagens. Lookups sem correspondência retornam nil (sinal de
// ausência), nunca erro.
type PropertyRepository interface {
	// Create persiste o imóvel e em seguida cada upload na ordem recebida:
	// sort_order = índice+1, primeiro upload marcado como primário.
	Create(ctx context.Context, property *entities.Property, uploads []ports.UploadedFile) error

	// List retorna imóveis não deletados, filtrados e paginados,
	// ordenados por created_at decrescente, com imagens carregadas.
	List(ctx context.Context, filters PropertyFilters) (*PropertyPage, error)

	// FindByID retorna o imóvel com imagens em ordem de exibição,
	// ou nil se não existir entre os não deletados.
	FindByID(ctx context.Context, id uint) (*entities.Property, error)

	// Update aplica merge parcial nos campos escalares e retorna o imóvel
	// com imagens recarregadas, ou nil se não existir.
	Update(ctx context.Context, id uint, changes PropertyChanges) (*entities.Property, error)

	// Delete remove fisicamente as imagens filhas e marca o imóvel como
	// deletado (soft delete), em uma única transação.
	// Retorna false se o imóvel não existir.
	Delete(ctx context.Context, id uint) (bool, error)

	// UploadImages anexa imagens a um imóvel existente, continuando o
	// sort_order a partir do maior atual. O primeiro upload vira primário
	// apenas quando o imóvel ainda não tem nenhuma imagem.
	UploadImages(ctx context.Context, propertyID uint, uploads []ports.UploadedFile) (*entities.Property, error)

	// FindImage retorna uma imagem por id, ou nil se não existir
	FindImage(ctx context.Context, imageID uint) (*entities.PropertyImage, error)

	// Operações de ordenação. Cada uma executa leitura e escrita das
	// linhas do mesmo imóvel dentro de uma transação.
	// Retornam false se a imagem não existir.
	SetPrimaryImage(ctx context.Context, imageID uint) (bool, error)
	RemovePrimaryImage(ctx context.Context, imageID uint) (bool, error)
	MoveImageUp(ctx context.Context, imageID uint) (bool, error)
	MoveImageDown(ctx context.Context, imageID uint) (bool, error)

	// DeleteImage remove fisicamente uma única imagem
	DeleteImage(ctx context.Context, imageID uint) (bool, error)
}
