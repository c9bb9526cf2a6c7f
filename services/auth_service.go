package services

import (
	"errors"
	"time"

	"github.com/bedrock/sor-api/dto"
	"github.com/bedrock/sor-api/models"
	"github.com/bedrock/sor-api/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username/password pair does
// not match an active account. The same error covers unknown users, wrong
// passwords and inactive accounts so callers cannot distinguish them.
var ErrInvalidCredentials = errors.New("no active account found with the given credentials")

// ErrInvalidToken is returned when a presented token fails validation.
var ErrInvalidToken = errors.New("token is invalid or expired")

// AuthService authenticates users against the store and issues signed
// access/refresh token pairs.
type AuthService struct {
	users      *repositories.UserRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates an auth service signing with the given secret.
func NewAuthService(users *repositories.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// ObtainPair authenticates the credentials and returns the user block with
// a fresh access/refresh pair.
func (s *AuthService) ObtainPair(username, password string) (*dto.AuthUser, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.signToken(user, dto.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, dto.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AuthUser{
		Username: user.Username,
		Email:    user.Email,
		Refresh:  refresh,
		Access:   access,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil || claims.TokenType != dto.TokenTypeRefresh {
		return "", ErrInvalidToken
	}
	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil || !user.IsActive {
		return "", ErrInvalidToken
	}
	return s.signToken(user, dto.TokenTypeAccess, s.accessTTL)
}

// ValidateAccess validates an access token and returns its claims.
func (s *AuthService) ValidateAccess(token string) (*dto.TokenClaims, error) {
	claims, err := s.parseToken(token)
	if err != nil || claims.TokenType != dto.TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) signToken(user models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if tokenType == dto.TokenTypeAccess {
		claims.Username = user.Username
		claims.Email = user.Email
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) parseToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EnsureAdminUser creates the bootstrap account when it does not exist yet.
// No-op when username or password is empty.
func (s *AuthService) EnsureAdminUser(username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.users.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	})
}
