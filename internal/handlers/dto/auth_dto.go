package dto

import (
	"time"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
	"github.com/rafabene/realestate-backend/internal/services"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest representa a requisição de registro
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

// ListUsersRequest representa os query params de listagem de usuários
type ListUsersRequest struct {
	Name     *string `form:"name"`
	Email    *string `form:"email"`
	Page     int     `form:"page" binding:"omitempty,gte=1"`
	PageSize int     `form:"per_page" binding:"omitempty,gte=1,lte=100"`
}

// ToFilters converte os query params nos filtros do repository
func (r *ListUsersRequest) ToFilters() repositories.UserFilters {
	return repositories.UserFilters{
		Name:     r.Name,
		Email:    r.Email,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserListResponse é o corpo da listagem de usuários
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// ToUserListResponse converte uma página de usuários na resposta
func ToUserListResponse(page *repositories.UserPage) UserListResponse {
	data := make([]UserResponse, 0, len(page.Users))
	for _, user := range page.Users {
		data = append(data, ToUserResponse(user))
	}

	return UserListResponse{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
			Total:       page.Total,
		},
	}
}

// AuthResponse é o corpo de login/registro: token + usuário
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToAuthResponse converte o resultado do AuthService na resposta
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		Token: result.Token,
		User:  ToUserResponse(result.User),
	}
}
