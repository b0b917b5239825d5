package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodshorts-api/config"
	"foodshorts-api/models"
	"foodshorts-api/repositories"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(refreshToken string) (*models.AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	// Both email and username are unique; reject if either is taken
	existing, err := s.userRepo.GetByEmailOrUsername(req.Email, req.Username)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       req.Email,
		Username:    req.Username,
		Password:    string(hashedPassword),
		DisplayName: req.DisplayName,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.tokenPair(user)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

func (s *authService) Refresh(refreshToken string) (*models.AuthResponse, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidRefreshToken
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(uint(userID))
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.tokenPair(user)
}

func (s *authService) tokenPair(user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.signToken(user, TokenTypeAccess, config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(user, TokenTypeRefresh, config.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:         *user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) signToken(user *models.User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"token_type": tokenType,
		"exp":        now.Add(expiry).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
