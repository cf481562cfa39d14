package dto

import (
	"errors"
	"mime/multipart"
	"testing"

	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
)

func TestFieldErrors(t *testing.T) {
	t.Run("FieldError do domínio vira erro por campo", func(t *testing.T) {
		err := &apperrors.FieldError{Field: "year_built", Message: "must be between 1800 and 2027"}

		verrs, ok := FieldErrors(err)
		if !ok {
			t.Fatal("esperava conversão de FieldError")
		}
		if len(verrs) != 1 || verrs[0].Field != "year_built" {
			t.Errorf("esperava erro no campo year_built, obteve %v", verrs)
		}
	})

	t.Run("outros erros não são convertidos", func(t *testing.T) {
		if _, ok := FieldErrors(errors.New("boom")); ok {
			t.Error("erro genérico não deveria virar erro de validação")
		}
	})
}

func TestImageUploadErrors(t *testing.T) {
	header := func(name string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{Filename: name, Size: size}
	}

	t.Run("imagens válidas passam", func(t *testing.T) {
		headers := []*multipart.FileHeader{
			header("fachada.jpg", 1024),
			header("sala.PNG", 2048),
			header("vista.webp", maxImageSize),
		}
		if verrs := ImageUploadErrors(headers); len(verrs) != 0 {
			t.Errorf("esperava nenhum erro, obteve %v", verrs)
		}
	})

	t.Run("extensão não aceita é rejeitada", func(t *testing.T) {
		headers := []*multipart.FileHeader{header("planta.pdf", 1024)}

		verrs := ImageUploadErrors(headers)
		if len(verrs) != 1 {
			t.Fatalf("esperava 1 erro, obteve %d", len(verrs))
		}
		if verrs[0].Field != "images[0]" {
			t.Errorf("esperava campo 'images[0]', obteve '%s'", verrs[0].Field)
		}
		if verrs[0].Tag != "mimes" {
			t.Errorf("esperava tag 'mimes', obteve '%s'", verrs[0].Tag)
		}
	})

	t.Run("arquivo acima de 5MB é rejeitado", func(t *testing.T) {
		headers := []*multipart.FileHeader{header("panorama.jpg", maxImageSize+1)}

		verrs := ImageUploadErrors(headers)
		if len(verrs) != 1 {
			t.Fatalf("esperava 1 erro, obteve %d", len(verrs))
		}
		if verrs[0].Tag != "max" {
			t.Errorf("esperava tag 'max', obteve '%s'", verrs[0].Tag)
		}
	})

	t.Run("erros apontam o índice de cada arquivo", func(t *testing.T) {
		headers := []*multipart.FileHeader{
			header("ok.jpg", 1024),
			header("virus.exe", 1024),
			header("gigante.png", maxImageSize+1),
		}

		verrs := ImageUploadErrors(headers)
		if len(verrs) != 2 {
			t.Fatalf("esperava 2 erros, obteve %d", len(verrs))
		}
		if verrs[0].Field != "images[1]" || verrs[1].Field != "images[2]" {
			t.Errorf("esperava campos images[1] e images[2], obteve %v", verrs)
		}
	})

	t.Run("sem arquivos não há erros", func(t *testing.T) {
		if verrs := ImageUploadErrors(nil); len(verrs) != 0 {
			t.Errorf("esperava nenhum erro, obteve %v", verrs)
		}
	})
}
