package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
)

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// ValidationProblem é um problem RFC 7807 estendido com erros por campo
type ValidationProblem struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewProblem cria um problem RFC 7807 com o type ancorado na base URL
func NewProblem(c *gin.Context, problemType, title, detail string, status int) *problems.Problem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewDetailedProblem(status, detail)
	p.Type = baseURL + problemType
	p.Title = title
	p.Instance = c.Request.URL.Path
	return p
}

// NewProblemI18n cria um problem RFC 7807 com título e detalhe traduzidos
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *problems.Problem {
	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)
	return NewProblem(c, problemType, title, detail, status)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) *ValidationProblem {
	p := NewProblemI18n(
		c,
		apperrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		422,
	)
	return &ValidationProblem{
		Problem: *p,
		Errors:  validationErrors,
	}
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) *problems.Problem {
	return NewProblemI18n(
		c,
		apperrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *problems.Problem {
	return NewProblemI18n(
		c,
		apperrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) *problems.Problem {
	return NewProblemI18n(
		c,
		apperrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) *problems.Problem {
	return NewProblemI18n(
		c,
		apperrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) *problems.Problem {
	return NewProblemI18n(
		c,
		apperrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
