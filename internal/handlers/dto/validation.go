package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
)

// maxImageSize é o tamanho máximo aceito por arquivo de imagem (5MB)
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// BindingErrors converte erros do binding do Gin (validator/v10) em
// erros de validação por campo para a resposta RFC 7807
func BindingErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}
	return result
}

// ImageUploadErrors valida extensão e tamanho dos arquivos de imagem
// enviados. Aceita jpeg, jpg, png, gif e webp com até 5MB cada.
func ImageUploadErrors(headers []*multipart.FileHeader) []ValidationError {
	var result []ValidationError

	for i, header := range headers {
		field := fmt.Sprintf("images[%d]", i)

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedImageExts[ext] {
			result = append(result, ValidationError{
				Field:   field,
				Message: "must be a jpeg, jpg, png, gif or webp image",
				Tag:     "mimes",
				Value:   header.Filename,
			})
			continue
		}

		if header.Size > maxImageSize {
			result = append(result, ValidationError{
				Field:   field,
				Message: "must be at most 5MB",
				Tag:     "max",
				Value:   header.Filename,
			})
		}
	}

	return result
}

// FieldErrors converte um erro de validação do domínio (FieldError) em
// erros por campo para a resposta RFC 7807. Retorna false para erros de
// outra natureza.
func FieldErrors(err error) ([]ValidationError, bool) {
	var fe *apperrors.FieldError
	if !errors.As(err, &fe) {
		return nil, false
	}
	return []ValidationError{{Field: fe.Field, Message: fe.Message}}, true
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
