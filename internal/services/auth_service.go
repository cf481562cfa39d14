package services

import (
	"context"
	"time"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/errors"
	"github.com/rafabene/realestate-backend/internal/domain/ports"
	"github.com/rafabene/realestate-backend/internal/domain/repositories"
	"github.com/rafabene/realestate-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de autenticação e gestão de usuários
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		issuer:    issuer,
		uow:       uow,
		logger:    logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult é o resultado de login/registro: usuário + token emitido
type AuthResult struct {
	User  *entities.User
	Token string
}

// Register cria um novo usuário e emite seu primeiro token
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entities.RoleAgent,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("user registration failed", "email", email.String(), "error", err)
		return nil, err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Login autentica o usuário, revoga tokens anteriores e emite um novo
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	// Emails são persistidos normalizados; normalizar antes do lookup
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	var token string
	// Revogação dos tokens antigos e emissão do novo na mesma transação
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tokenRepo.DeleteByUser(txCtx, user.ID); err != nil {
			return err
		}
		token, err = s.issueToken(txCtx, user)
		return err
	})
	if err != nil {
		s.logger.Error("login failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Logout revoga o token usado na requisição atual
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.tokenRepo.DeleteByID(ctx, tokenID); err != nil {
		// Erro no logout não é exposto ao usuário
		s.logger.Error("logout failed", "token_id", tokenID, "error", err)
	}
	return nil
}

// VerifyToken valida assinatura e revogação de um token bearer
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*entities.User, ports.TokenClaims, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, ports.TokenClaims{}, errors.ErrUnauthorized
	}

	stored, err := s.tokenRepo.FindByID(ctx, claims.TokenID)
	if err != nil {
		return nil, ports.TokenClaims{}, err
	}
	if stored == nil || stored.IsExpired() {
		return nil, ports.TokenClaims{}, errors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ports.TokenClaims{}, err
	}
	if user == nil {
		return nil, ports.TokenClaims{}, errors.ErrUnauthorized
	}

	return user, claims, nil
}

// GetUser busca um usuário por ID
func (s *AuthService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *AuthService) ListUsers(ctx context.Context, filters repositories.UserFilters) (*repositories.UserPage, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUserInput representa os dados para atualizar um usuário
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateUser aplica merge parcial nos dados do usuário,
// refazendo o hash da senha quando uma nova for informada
func (s *AuthService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		user.Email = email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("user update failed", "user_id", id, "error", err)
		return nil, err
	}

	return user, nil
}

// DeleteUser marca o usuário como deletado e revoga seus tokens
func (s *AuthService) DeleteUser(ctx context.Context, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		found, err := s.userRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return errors.ErrUserNotFound
		}
		return s.tokenRepo.DeleteByUser(txCtx, id)
	})
}

func (s *AuthService) issueToken(ctx context.Context, user *entities.User) (string, error) {
	issued, err := s.issuer.Issue(user.ID, user.Email.String())
	if err != nil {
		return "", err
	}

	record := &entities.AccessToken{
		ID:        issued.TokenID,
		UserID:    user.ID,
		ExpiresAt: issued.ExpiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return "", err
	}

	return issued.Token, nil
}
