package repositories

import (
	"context"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
)

// TokenRepository define a interface para persistência de tokens de acesso.
// Um token é válido enquanto seu registro existir e não estiver expirado.
type TokenRepository interface {
	Create(ctx context.Context, token *entities.AccessToken) error
	FindByID(ctx context.Context, id string) (*entities.AccessToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID uint) error
}
