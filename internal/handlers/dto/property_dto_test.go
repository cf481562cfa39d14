package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
)

func TestCreatePropertyRequest_ToEntity(t *testing.T) {
	t.Run("aplica defaults para campos numéricos ausentes", func(t *testing.T) {
		req := CreatePropertyRequest{
			Title:        "Nhà phố Thảo Điền",
			PropertyType: "house",
			Status:       "available",
			Price:        5000000000,
			Area:         120,
			Address:      "45 Xuân Thủy",
			City:         "Hồ Chí Minh",
			District:     "Quận 2",
			ContactName:  "Trần Thị B",
			ContactPhone: "0912345678",
		}

		userID := uint(7)
		property := req.ToEntity(&userID)

		if property.Bedrooms != 0 || property.Bathrooms != 0 {
			t.Errorf("esperava 0 quartos e banheiros, obteve %d/%d", property.Bedrooms, property.Bathrooms)
		}
		if property.Floors != 1 {
			t.Errorf("esperava 1 andar por padrão, obteve %d", property.Floors)
		}
		if property.CreatedBy == nil || *property.CreatedBy != 7 {
			t.Error("esperava created_by preenchido com o usuário autenticado")
		}
		if property.UpdatedBy == nil || *property.UpdatedBy != 7 {
			t.Error("esperava updated_by preenchido com o usuário autenticado")
		}
	})

	t.Run("respeita campos numéricos explícitos", func(t *testing.T) {
		bedrooms, bathrooms, floors := 3, 2, 4
		req := CreatePropertyRequest{
			Title:        "Văn phòng trung tâm",
			PropertyType: "office",
			Status:       "available",
			Price:        100,
			Area:         200,
			Bedrooms:     &bedrooms,
			Bathrooms:    &bathrooms,
			Floors:       &floors,
			Address:      "1 Lê Lợi",
			City:         "Hà Nội",
			District:     "Hoàn Kiếm",
			ContactName:  "Lê Văn C",
			ContactPhone: "0987654321",
		}

		property := req.ToEntity(nil)

		if property.Bedrooms != 3 || property.Bathrooms != 2 || property.Floors != 4 {
			t.Errorf("esperava 3/2/4, obteve %d/%d/%d", property.Bedrooms, property.Bathrooms, property.Floors)
		}
		if err := property.Validate(); err != nil {
			t.Errorf("entidade convertida deveria ser válida: %v", err)
		}
	})
}

func TestUpdatePropertyRequest_ToChanges(t *testing.T) {
	t.Run("campos ausentes não entram no merge", func(t *testing.T) {
		price := 123.45
		status := "sold"
		req := UpdatePropertyRequest{
			Price:  &price,
			Status: &status,
		}

		changes := req.ToChanges(nil)

		if changes.Title != nil {
			t.Error("title ausente não deveria entrar no merge")
		}
		if changes.Price == nil || *changes.Price != 123.45 {
			t.Error("esperava price presente no merge")
		}
		if changes.Status == nil || *changes.Status != entities.StatusSold {
			t.Error("esperava status convertido para o enum de domínio")
		}
	})

	t.Run("campo images no payload é ignorado", func(t *testing.T) {
		// Imagens têm endpoints próprios: um "images" perdido no JSON de
		// atualização não pode causar erro nem mutação.
		body := `{"title": "Novo título", "images": [{"id": 1, "sort_order": 9}]}`

		var req UpdatePropertyRequest
		if err := json.NewDecoder(strings.NewReader(body)).Decode(&req); err != nil {
			t.Fatalf("payload com images deveria decodificar: %v", err)
		}

		changes := req.ToChanges(nil)
		if changes.Title == nil || *changes.Title != "Novo título" {
			t.Error("esperava title presente no merge")
		}
	})

	t.Run("year_built fora do intervalo é barrado antes da persistência", func(t *testing.T) {
		// O binding só valida o limite inferior (gte=1800); o limite
		// superior é responsabilidade de PropertyChanges.Validate.
		body := `{"year_built": 9999}`

		var req UpdatePropertyRequest
		if err := json.NewDecoder(strings.NewReader(body)).Decode(&req); err != nil {
			t.Fatalf("payload deveria decodificar: %v", err)
		}

		changes := req.ToChanges(nil)
		if changes.YearBuilt == nil || *changes.YearBuilt != 9999 {
			t.Fatal("esperava year_built presente no merge")
		}

		if err := changes.Validate(); err == nil {
			t.Error("esperava erro de validação para year_built=9999, obteve sucesso")
		}
	})
}

func TestListPropertiesRequest_ToFilters(t *testing.T) {
	city := "Đà Nẵng"
	status := "available"
	ptype := "villa"
	minPrice := 100.0

	req := ListPropertiesRequest{
		City:         &city,
		Status:       &status,
		PropertyType: &ptype,
		MinPrice:     &minPrice,
		Page:         2,
		PerPage:      20,
	}

	filters := req.ToFilters()

	if filters.City == nil || *filters.City != "Đà Nẵng" {
		t.Error("esperava filtro de cidade preservado")
	}
	if filters.Status == nil || *filters.Status != entities.StatusAvailable {
		t.Error("esperava status convertido para o enum de domínio")
	}
	if filters.PropertyType == nil || *filters.PropertyType != entities.TypeVilla {
		t.Error("esperava tipo convertido para o enum de domínio")
	}
	if filters.MaxPrice != nil {
		t.Error("max_price ausente deveria permanecer nil")
	}
	if filters.Page != 2 || filters.PerPage != 20 {
		t.Errorf("esperava paginação 2/20, obteve %d/%d", filters.Page, filters.PerPage)
	}
}

func TestToPropertyListResponse(t *testing.T) {
	t.Run("trunca o preço para inteiro na listagem", func(t *testing.T) {
		page := &repositories.PropertyPage{
			Properties: []*entities.Property{
				{ID: 1, Title: "Căn hộ", Price: 1999999999.99, City: "Hồ Chí Minh", Status: entities.StatusAvailable},
			},
			CurrentPage: 1,
			LastPage:    1,
			Total:       1,
		}

		resp := ToPropertyListResponse(page)

		if resp.Data[0].Price != 1999999999 {
			t.Errorf("esperava preço truncado 1999999999, obteve %d", resp.Data[0].Price)
		}
	})

	t.Run("meta reflete a página do repository", func(t *testing.T) {
		page := &repositories.PropertyPage{
			Properties:  []*entities.Property{{ID: 1}, {ID: 2}},
			CurrentPage: 1,
			LastPage:    repositories.LastPage(4, 2),
			Total:       4,
		}

		resp := ToPropertyListResponse(page)

		if resp.Meta.CurrentPage != 1 || resp.Meta.LastPage != 2 || resp.Meta.Total != 4 {
			t.Errorf("esperava meta 1/2/4, obteve %d/%d/%d",
				resp.Meta.CurrentPage, resp.Meta.LastPage, resp.Meta.Total)
		}
	})

	t.Run("página vazia serializa data como lista vazia, não null", func(t *testing.T) {
		page := &repositories.PropertyPage{CurrentPage: 1, LastPage: 1, Total: 0}

		resp := ToPropertyListResponse(page)

		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("falha ao serializar resposta: %v", err)
		}
		if !strings.Contains(string(raw), `"data":[]`) {
			t.Errorf("esperava data vazio na serialização, obteve %s", raw)
		}
	})

	t.Run("imagens aparecem na projeção reduzida", func(t *testing.T) {
		page := &repositories.PropertyPage{
			Properties: []*entities.Property{
				{
					ID: 1,
					Images: []entities.PropertyImage{
						{ID: 10, ImagePath: "/uploads/properties/a.jpg", IsPrimary: true, SortOrder: 1},
						{ID: 11, ImagePath: "/uploads/properties/b.jpg", SortOrder: 2},
					},
				},
			},
			CurrentPage: 1,
			LastPage:    1,
			Total:       1,
		}

		resp := ToPropertyListResponse(page)

		if len(resp.Data[0].Images) != 2 {
			t.Fatalf("esperava 2 imagens, obteve %d", len(resp.Data[0].Images))
		}
		if !resp.Data[0].Images[0].IsPrimary {
			t.Error("esperava a primeira imagem marcada como primária")
		}
	})
}

func TestToPropertyDetailResponse(t *testing.T) {
	lat, lng := 10.776, 106.700
	email := "contato@example.com"
	property := &entities.Property{
		ID:           1,
		Title:        "Biệt thự biển",
		PropertyType: entities.TypeVilla,
		Status:       entities.StatusAvailable,
		Price:        8500000000.50,
		Area:         350.25,
		Latitude:     &lat,
		Longitude:    &lng,
		ContactName:  "Phạm Văn D",
		ContactPhone: "0123456789",
		ContactEmail: &email,
		Images: []entities.PropertyImage{
			{ID: 5, ImagePath: "/uploads/properties/x.jpg", IsPrimary: true, SortOrder: 2},
		},
	}

	resp := ToPropertyDetailResponse(property)

	t.Run("preço não é truncado no detalhe", func(t *testing.T) {
		if resp.Price != 8500000000.50 {
			t.Errorf("esperava preço 8500000000.50, obteve %f", resp.Price)
		}
	})

	t.Run("coordenadas ficam aninhadas em location", func(t *testing.T) {
		if resp.Location.Latitude == nil || *resp.Location.Latitude != 10.776 {
			t.Error("esperava latitude em location")
		}
		if resp.Location.Longitude == nil || *resp.Location.Longitude != 106.700 {
			t.Error("esperava longitude em location")
		}
	})

	t.Run("dados de contato ficam aninhados em contact", func(t *testing.T) {
		if resp.Contact.Name != "Phạm Văn D" || resp.Contact.Phone != "0123456789" {
			t.Error("esperava nome e telefone em contact")
		}
		if resp.Contact.Email == nil || *resp.Contact.Email != "contato@example.com" {
			t.Error("esperava email em contact")
		}
	})

	t.Run("imagem de detalhe carrega o sort_order", func(t *testing.T) {
		if len(resp.Images) != 1 || resp.Images[0].SortOrder != 2 {
			t.Error("esperava sort_order presente na projeção de detalhe")
		}
	})

	t.Run("features nil serializa como lista vazia", func(t *testing.T) {
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("falha ao serializar resposta: %v", err)
		}
		if !strings.Contains(string(raw), `"features":[]`) {
			t.Errorf("esperava features vazio na serialização, obteve %s", raw)
		}
	})
}
