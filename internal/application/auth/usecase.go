package auth

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// SessionManager lo que auth necesita del gestor de sesiones.
type SessionManager interface {
	Create(ctx context.Context, identity string) (string, error)
	Resolve(ctx context.Context, token string) (string, bool, error)
	Destroy(ctx context.Context, token string) error
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y perfil.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	sessions  SessionManager
	passwords PasswordMatcher
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions SessionManager, passwords PasswordMatcher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, passwords: passwords}
}

// RegisterUser persiste la cuenta. El email repetido llega del store como
// ErrDuplicateAccount. No inicia sesión.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	stored, err := uc.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: stored,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login verifica email/password y abre una sesión. Devuelve el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUnregisteredEmail
	}
	if !uc.passwords.Matches(user.Password, in.Password) {
		return "", domain.ErrIncorrectPassword
	}
	return uc.sessions.Create(ctx, user.Email)
}

// Logout destruye la sesión del token.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Destroy(ctx, token)
}

// Profile devuelve el email de la sesión o ok=false si no hay sesión válida.
func (uc *AuthUseCase) Profile(ctx context.Context, token string) (*dto.ProfileResponse, bool, error) {
	email, ok, err := uc.sessions.Resolve(ctx, token)
	if err != nil || !ok {
		return nil, false, err
	}
	return &dto.ProfileResponse{Email: email}, true, nil
}
