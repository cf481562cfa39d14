package entities

import "time"

// AccessToken representa um token de acesso emitido para um usuário.
// O token assinado em si não é persistido: apenas o identificador (jti),
// suficiente para suportar revogação no logout.
type AccessToken struct {
	ID        string // jti do JWT
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired verifica se o token expirou
func (t *AccessToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
