package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/services"
)

const (
	// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
	CurrentUserContextKey = "current_user"
	// TokenIDContextKey é a chave do jti do token usado na requisição
	TokenIDContextKey = "token_id"
)

// AuthMiddleware valida o token bearer e carrega o usuário no contexto
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAuth exige um token bearer válido e não revogado
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization format, expected Bearer token")
			return
		}

		user, claims, err := m.authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Set(TokenIDContextKey, claims.TokenID)
		c.Next()
	}
}

// RequirePermission exige que o usuário autenticado tenha a permissão.
// Deve ser encadeado após RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, "missing authenticated user")
			return
		}

		if !user.HasPermission(permission) {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado do contexto da requisição
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok
}

// TokenID retorna o jti do token usado na requisição
func TokenID(c *gin.Context) (string, bool) {
	value, exists := c.Get(TokenIDContextKey)
	if !exists {
		return "", false
	}

	id, ok := value.(string)
	return id, ok
}

// abortForbidden responde 403 como problem RFC 7807
func abortForbidden(c *gin.Context) {
	p := problems.NewDetailedProblem(http.StatusForbidden, "insufficient permissions")
	p.Type = c.GetString("base_url") + apperrors.ProblemTypeForbidden
	p.Instance = c.Request.URL.Path
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusForbidden, p)
}

// abortUnauthorized responde 401 como problem RFC 7807. Construído aqui
// direto com a lib problems: o pacote dto importa middleware, então este
// pacote não pode usar os helpers de dto.
func abortUnauthorized(c *gin.Context, detail string) {
	p := problems.NewDetailedProblem(http.StatusUnauthorized, detail)
	p.Type = c.GetString("base_url") + apperrors.ProblemTypeUnauthorized
	p.Instance = c.Request.URL.Path
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, p)
}
