package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/realestate-backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher usando bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um novo BcryptHasher com o custo padrão
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
