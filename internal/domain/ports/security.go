package ports

import "time"

// PasswordHasher define o colaborador de hash de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// IssuedToken é o resultado da emissão de um token de acesso
type IssuedToken struct {
	TokenID   string // identificador persistido para revogação (jti)
	Token     string // token assinado entregue ao cliente
	ExpiresAt time.Time
}

// TokenClaims são os dados extraídos de um token válido
type TokenClaims struct {
	TokenID string
	UserID  uint
	Email   string
}

// TokenIssuer define o colaborador de emissão/verificação de tokens.
// A verificação de assinatura é local; a revogação é checada contra o
// registro persistido pelo repository de tokens.
type TokenIssuer interface {
	Issue(userID uint, email string) (IssuedToken, error)
	Verify(token string) (TokenClaims, error)
}
