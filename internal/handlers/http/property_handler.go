package http

import (
	errs "errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/handlers/dto"
	"github.com/rafabene/realestate-backend/internal/handlers/middleware"
	"github.com/rafabene/realestate-backend/internal/services"
)

// PropertyHandler lida com requisições HTTP relacionadas a imóveis
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler cria um novo PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// ListProperties lista imóveis com filtros e paginação
//
//	@Summary	Lista imóveis
//	@Tags		properties
//	@Produce	json
//	@Param		city			query		string	false	"Filtro por cidade (igualdade exata)"
//	@Param		status			query		string	false	"Filtro por status"			Enums(available, sold, rented, pending)
//	@Param		property_type	query		string	false	"Filtro por tipo"			Enums(apartment, house, villa, office, land)
//	@Param		min_price		query		number	false	"Preço mínimo (inclusivo)"
//	@Param		max_price		query		number	false	"Preço máximo (inclusivo)"
//	@Param		page			query		int		false	"Página (começa em 1)"
//	@Param		per_page		query		int		false	"Itens por página (default 10)"
//	@Success	200				{object}	dto.PropertyListResponse
//	@Router		/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var req dto.ListPropertiesRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	page, err := h.propertyService.ListProperties(c.Request.Context(), req.ToFilters())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyListResponse(page))
}

// GetProperty busca um imóvel por ID com suas imagens
//
//	@Summary	Detalhe de um imóvel
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		int	true	"ID do imóvel"
//	@Success	200	{object}	dto.PropertyDetailResponse
//	@Failure	404	{object}	problems.Problem
//	@Router		/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Property"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyDetailResponse(property))
}

// CreateProperty cria um novo imóvel com imagens opcionais (multipart)
//
//	@Summary	Cria um imóvel
//	@Tags		properties
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	dto.PropertyDetailResponse
//	@Failure	422	{object}	dto.ValidationProblem
//	@Router		/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest

	if err := c.ShouldBind(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	uploads, closeFiles, verrs, err := formImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewProblemI18n(c, errors.ProblemTypeBadRequest,
			"error.bad_request.title", "error.bad_request.detail", http.StatusBadRequest))
		return
	}
	if len(verrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, verrs))
		return
	}
	defer closeFiles()

	var createdBy *uint
	if user, ok := middleware.CurrentUser(c); ok {
		createdBy = &user.ID
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), req.ToEntity(createdBy), uploads)
	if err != nil {
		if verrs, ok := dto.FieldErrors(err); ok {
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyDetailResponse(property))
}

// UpdateProperty aplica merge parcial nos campos escalares do imóvel.
// Imagens no payload são ignoradas: gerenciamento de imagens tem rotas próprias.
//
//	@Summary	Atualiza um imóvel
//	@Tags		properties
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do imóvel"
//	@Success	200	{object}	dto.PropertyDetailResponse
//	@Failure	404	{object}	problems.Problem
//	@Failure	422	{object}	dto.ValidationProblem
//	@Router		/properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	var updatedBy *uint
	if user, ok := middleware.CurrentUser(c); ok {
		updatedBy = &user.ID
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), id, req.ToChanges(updatedBy))
	if err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Property"))
			return
		}
		if verrs, ok := dto.FieldErrors(err); ok {
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyDetailResponse(property))
}

// DeleteProperty remove as imagens do imóvel e o marca como deletado
//
//	@Summary	Remove um imóvel
//	@Tags		properties
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID do imóvel"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Property"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// paramID extrai e valida o parâmetro :id da rota
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewProblemI18n(c, errors.ProblemTypeBadRequest,
			"error.bad_request.title", "error.bad_request.detail", http.StatusBadRequest))
		return 0, false
	}
	return uint(id), true
}

// formImages abre os arquivos enviados no campo multipart "images[]"
// (com fallback para "images"). Arquivos com extensão ou tamanho fora do
// aceito retornam erros de validação por campo, sem abrir nenhum arquivo.
// Retorna também o closer dos arquivos abertos.
func formImages(c *gin.Context) ([]ports.UploadedFile, func(), []dto.ValidationError, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Sem corpo multipart não há imagens para anexar
		return nil, func() {}, nil, nil
	}

	headers := form.File["images[]"]
	if len(headers) == 0 {
		headers = form.File["images"]
	}

	if verrs := dto.ImageUploadErrors(headers); len(verrs) > 0 {
		return nil, func() {}, verrs, nil
	}

	uploads := make([]ports.UploadedFile, 0, len(headers))
	open := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range open {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, nil, err
		}
		open = append(open, file)
		uploads = append(uploads, ports.UploadedFile{
			Name:    header.Filename,
			Size:    header.Size,
			Content: file,
		})
	}

	return uploads, closeAll, nil, nil
}
