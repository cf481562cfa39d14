package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/realestate-backend/internal/handlers/middleware"
	"github.com/rafabene/realestate-backend/internal/infrastructure/i18n"
)

// T traduz uma chave usando o serviço e o idioma detectados pelo middleware.
// Uso: dto.T(c, "error.property_not_found")
// Sem serviço no contexto a chave é devolvida como está.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição, com fallback "en"
func GetLanguage(c *gin.Context) string {
	value, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "en"
	}

	lang, ok := value.(string)
	if !ok {
		return "en"
	}

	return lang
}
