package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/handlers/dto"
	"github.com/rafabene/realestate-backend/internal/handlers/middleware"
	"github.com/rafabene/realestate-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação e usuários
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um usuário e emite um token de acesso
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200			{object}	dto.AuthResponse
//	@Failure	401			{object}	problems.Problem
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// Register cria um novo usuário e emite seu primeiro token
//
//	@Summary	Registro
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	409		{object}	problems.Problem
//	@Router		/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
		case errs.Is(err, errors.ErrInvalidEmail):
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: "must be a valid email address", Tag: "email"},
			})
			c.JSON(http.StatusUnprocessableEntity, response)
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result))
}

// Logout revoga o token usado na requisição atual
//
//	@Summary	Logout
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	204
//	@Router		/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenID, ok := middleware.TokenID(c); ok {
		_ = h.authService.Logout(c.Request.Context(), tokenID)
	}

	c.Status(http.StatusNoContent)
}

// Me retorna o usuário autenticado
//
//	@Summary	Usuário atual
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Router		/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com filtros e paginação
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		name	query		string	false	"Busca parcial por nome"
//	@Param		email	query		string	false	"Busca parcial por email"
//	@Success	200		{object}	dto.UserListResponse
//	@Router		/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	page, err := h.authService.ListUsers(c.Request.Context(), req.ToFilters())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(page))
}

// GetUser busca um usuário por ID
//
//	@Summary	Detalhe de um usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	problems.Problem
//	@Router		/users/{id} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser aplica merge parcial nos dados do usuário
//
//	@Summary	Atualiza um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	problems.Problem
//	@Router		/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	user, err := h.authService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		case errs.Is(err, errors.ErrInvalidEmail):
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: "must be a valid email address", Tag: "email"},
			})
			c.JSON(http.StatusUnprocessableEntity, response)
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser marca o usuário como deletado e revoga seus tokens
//
//	@Summary	Remove um usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID do usuário"
//	@Success	204
//	@Failure	404	{object}	problems.Problem
//	@Router		/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}
