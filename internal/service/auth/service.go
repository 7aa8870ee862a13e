package auth

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/auth"
	"github.com/congrega/attendance-backend/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo   auth.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo auth.UserRepository, jwtService jwt.Service) auth.Service {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.Service.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if existing != nil {
		return auth.TokenResponse{}, auth.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user := auth.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueToken(user.Username)
}

// Login implements auth.Service.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if user == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(user.Username)
}

func (s *authServiceImpl) issueToken(username string) (auth.TokenResponse, error) {
	token, _, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return auth.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
