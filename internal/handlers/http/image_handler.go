package http

import (
	"context"
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/handlers/dto"
	"github.com/rafabene/realestate-backend/internal/services"
)

// ImageHandler lida com requisições HTTP de imagens de imóveis
type ImageHandler struct {
	imageService *services.ImageService
}

// NewImageHandler cria um novo ImageHandler
func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// UploadImages anexa imagens a um imóvel existente
//
//	@Summary	Anexa imagens a um imóvel
//	@Tags		images
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do imóvel"
//	@Success	200	{object}	dto.PropertyDetailResponse
//	@Failure	404	{object}	problems.Problem
//	@Failure	422	{object}	dto.ValidationProblem
//	@Router		/properties/{id}/images [post]
func (h *ImageHandler) UploadImages(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
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

	if len(uploads) == 0 {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "images", Message: "at least one image is required", Tag: "required"},
		})
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	property, err := h.imageService.UploadImages(c.Request.Context(), id, uploads)
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

// SetPrimary marca a imagem como primária e desmarca as demais do imóvel
//
//	@Summary	Define a imagem primária
//	@Tags		images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da imagem"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/images/{id}/primary [put]
func (h *ImageHandler) SetPrimary(c *gin.Context) {
	h.mutate(c, h.imageService.SetPrimary)
}

// RemovePrimary desmarca a imagem como primária.
// Nenhuma outra imagem é promovida no lugar.
//
//	@Summary	Remove o status de primária
//	@Tags		images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da imagem"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/images/{id}/primary [delete]
func (h *ImageHandler) RemovePrimary(c *gin.Context) {
	h.mutate(c, h.imageService.RemovePrimary)
}

// MoveUp move a imagem uma posição para cima na ordem de exibição
//
//	@Summary	Move a imagem para cima
//	@Tags		images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da imagem"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/images/{id}/move-up [put]
func (h *ImageHandler) MoveUp(c *gin.Context) {
	h.mutate(c, h.imageService.MoveUp)
}

// MoveDown move a imagem uma posição para baixo na ordem de exibição
//
//	@Summary	Move a imagem para baixo
//	@Tags		images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da imagem"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/images/{id}/move-down [put]
func (h *ImageHandler) MoveDown(c *gin.Context) {
	h.mutate(c, h.imageService.MoveDown)
}

// DeleteImage remove uma única imagem
//
//	@Summary	Remove uma imagem
//	@Tags		images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da imagem"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/images/{id} [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	h.mutate(c, h.imageService.DeleteImage)
}

func (h *ImageHandler) mutate(c *gin.Context, fn func(context.Context, uint) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Image"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}
