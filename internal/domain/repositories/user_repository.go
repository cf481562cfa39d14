package repositories

import (
	"context"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filters UserFilters) (*UserPage, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Name     *string // busca parcial por nome
	Email    *string // busca parcial por email
	Page     int     // Página (começa em 1)
	PageSize int     // Itens por página (default: 15, max: 100)
}

// UserPage é o resultado paginado de uma listagem de usuários
type UserPage struct {
	Users       []*entities.User
	CurrentPage int
	LastPage    int
	Total       int64
}
