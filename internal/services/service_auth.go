package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogs-api/dto"
	"blogs-api/internal/authctx"
	"blogs-api/internal/models"
	"blogs-api/internal/repository"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

type AuthService struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
	cost     int
}

func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL, cost: bcrypt.DefaultCost}
}

func (s *AuthService) respond(u *models.User) (dto.AuthResponse, error) {
	tok, err := authctx.Sign(s.secret, u.ID.Hex(), u.Email, s.tokenTTL)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{Result: u, Token: tok}, nil
}

func (s *AuthService) SignUp(ctx context.Context, in dto.SignUpDTO) (dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return dto.AuthResponse{}, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return dto.AuthResponse{}, ErrPasswordMismatch
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if existing != nil {
		return dto.AuthResponse{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	u := &models.User{
		Name:         in.DisplayName(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return dto.AuthResponse{}, ErrUserExists
		}
		return dto.AuthResponse{}, err
	}
	return s.respond(u)
}

func (s *AuthService) SignIn(ctx context.Context, in dto.SignInDTO) (dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if u == nil {
		return dto.AuthResponse{}, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}
	return s.respond(u)
}
