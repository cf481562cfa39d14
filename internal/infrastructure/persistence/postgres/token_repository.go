package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

// TokenRepository implementa repositories.TokenRepository
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository cria um novo TokenRepository
func NewTokenRepository(db *gorm.DB) repositories.TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *entities.AccessToken) error {
	model := &AccessTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
	}

	return r.getDB(ctx).Create(model).Error
}

func (r *TokenRepository) FindByID(ctx context.Context, id string) (*entities.AccessToken, error) {
	var model AccessTokenModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.AccessToken{
		ID:        model.ID,
		UserID:    model.UserID,
		ExpiresAt: time.Unix(model.ExpiresAt, 0),
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *TokenRepository) DeleteByID(ctx context.Context, id string) error {
	return r.getDB(ctx).Where("id = ?", id).Delete(&AccessTokenModel{}).Error
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.getDB(ctx).Where("user_id = ?", userID).Delete(&AccessTokenModel{}).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *TokenRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
