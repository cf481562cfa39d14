package entities

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/rafabene/realestate-backend/internal/domain/errors"
)

func validProperty() Property {
	return Property{
		Title:        "Căn hộ cao cấp Quận 1",
		PropertyType: TypeApartment,
		Status:       StatusAvailable,
		Price:        2500000000,
		Area:         85.5,
		Bedrooms:     2,
		Bathrooms:    2,
		Floors:       1,
		Address:      "123 Nguyễn Huệ",
		City:         "Hồ Chí Minh",
		District:     "Quận 1",
		ContactName:  "Nguyễn Văn A",
		ContactPhone: "0901234567",
	}
}

func TestPropertyType_IsValid(t *testing.T) {
	tests := []struct {
		value    PropertyType
		expected bool
	}{
		{TypeApartment, true},
		{TypeHouse, true},
		{TypeVilla, true},
		{TypeOffice, true},
		{TypeLand, true},
		{PropertyType("castle"), false},
		{PropertyType(""), false},
		{PropertyType("Apartment"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.IsValid(); got != tt.expected {
				t.Errorf("para tipo '%s', esperava %v, obteve %v", tt.value, tt.expected, got)
			}
		})
	}
}

func TestPropertyStatus_IsValid(t *testing.T) {
	tests := []struct {
		value    PropertyStatus
		expected bool
	}{
		{StatusAvailable, true},
		{StatusSold, true},
		{StatusRented, true},
		{StatusPending, true},
		{PropertyStatus("archived"), false},
		{PropertyStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.IsValid(); got != tt.expected {
				t.Errorf("para status '%s', esperava %v, obteve %v", tt.value, tt.expected, got)
			}
		})
	}
}

func TestProperty_Validate(t *testing.T) {
	t.Run("imóvel válido passa na validação", func(t *testing.T) {
		p := validProperty()
		if err := p.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("título é obrigatório", func(t *testing.T) {
		p := validProperty()
		p.Title = ""
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para título vazio, obteve sucesso")
		}
	})

	t.Run("tipo inválido é rejeitado", func(t *testing.T) {
		p := validProperty()
		p.PropertyType = "penthouse"
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para tipo inválido, obteve sucesso")
		}
	})

	t.Run("status inválido é rejeitado", func(t *testing.T) {
		p := validProperty()
		p.Status = "unknown"
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para status inválido, obteve sucesso")
		}
	})

	t.Run("preço negativo é rejeitado", func(t *testing.T) {
		p := validProperty()
		p.Price = -1
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para preço negativo, obteve sucesso")
		}
	})

	t.Run("preço zero é aceito", func(t *testing.T) {
		p := validProperty()
		p.Price = 0
		if err := p.Validate(); err != nil {
			t.Errorf("esperava sucesso para preço zero, obteve erro: %v", err)
		}
	})

	t.Run("área negativa é rejeitada", func(t *testing.T) {
		p := validProperty()
		p.Area = -0.5
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para área negativa, obteve sucesso")
		}
	})

	t.Run("quartos e banheiros negativos são rejeitados", func(t *testing.T) {
		p := validProperty()
		p.Bedrooms = -1
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para quartos negativos, obteve sucesso")
		}

		p = validProperty()
		p.Bathrooms = -1
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para banheiros negativos, obteve sucesso")
		}
	})

	t.Run("andares abaixo de 1 são rejeitados", func(t *testing.T) {
		p := validProperty()
		p.Floors = 0
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para zero andares, obteve sucesso")
		}
	})

	t.Run("ano de construção dentro do intervalo é aceito", func(t *testing.T) {
		p := validProperty()
		year := 2015
		p.YearBuilt = &year
		if err := p.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}

		// Limite superior: ano seguinte ao atual (imóvel em construção)
		next := time.Now().Year() + 1
		p.YearBuilt = &next
		if err := p.Validate(); err != nil {
			t.Errorf("esperava sucesso para ano %d, obteve erro: %v", next, err)
		}
	})

	t.Run("ano de construção fora do intervalo é rejeitado", func(t *testing.T) {
		p := validProperty()
		old := 1799
		p.YearBuilt = &old
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para ano 1799, obteve sucesso")
		}

		future := time.Now().Year() + 2
		p.YearBuilt = &future
		if err := p.Validate(); err == nil {
			t.Errorf("esperava erro para ano %d, obteve sucesso", future)
		}
	})

	t.Run("ano de construção ausente é aceito", func(t *testing.T) {
		p := validProperty()
		p.YearBuilt = nil
		if err := p.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("erro de validação identifica o campo", func(t *testing.T) {
		p := validProperty()
		year := 9999
		p.YearBuilt = &year

		var fieldErr *apperrors.FieldError
		if err := p.Validate(); !errors.As(err, &fieldErr) {
			t.Fatalf("esperava FieldError, obteve: %v", err)
		}
		if fieldErr.Field != "year_built" {
			t.Errorf("esperava campo 'year_built', obteve '%s'", fieldErr.Field)
		}
	})
}

func TestProperty_IsDeleted(t *testing.T) {
	p := validProperty()
	if p.IsDeleted() {
		t.Error("imóvel sem deleted_at não deveria constar como deletado")
	}

	now := time.Now()
	p.DeletedAt = &now
	if !p.IsDeleted() {
		t.Error("imóvel com deleted_at deveria constar como deletado")
	}
}
