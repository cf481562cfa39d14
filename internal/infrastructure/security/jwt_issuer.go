package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rafabene/realestate-backend/internal/domain/ports"
)

// JWTIssuer implementa ports.TokenIssuer usando HMAC-SHA256.
// Cada token carrega um jti persistido para suportar revogação.
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer cria um novo JWTIssuer
func NewJWTIssuer(secret string, expiry time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

type tokenClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (i *JWTIssuer) Issue(userID uint, email string) (ports.IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(i.expiry)
	tokenID := uuid.NewString()

	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return ports.IssuedToken{
		TokenID:   tokenID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (i *JWTIssuer) Verify(token string) (ports.TokenClaims, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return ports.TokenClaims{}, err
	}
	if !parsed.Valid {
		return ports.TokenClaims{}, errors.New("invalid token")
	}

	return ports.TokenClaims{
		TokenID: claims.ID,
		UserID:  claims.UserID,
		Email:   claims.Email,
	}, nil
}
