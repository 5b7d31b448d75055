package service

import (
	"errors"
	"strings"
	"time"

	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenLifetimeHours = 24
const defaultPasswordMinLength = 6

// AuthService issues and parses admin bearer tokens.
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// HashPassword hashes a password with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a password against its bcrypt hash.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword checks a new password against the configured policy.
func (s *AuthService) ValidatePassword(password string) error {
	minLength := defaultPasswordMinLength
	if s != nil && s.cfg != nil && s.cfg.Security.PasswordPolicy.MinLength > 0 {
		minLength = s.cfg.Security.PasswordPolicy.MinLength
	}
	if len(password) < minLength {
		return &PasswordPolicyError{MinLength: minLength}
	}
	return nil
}

// JWTClaims is the signed token payload.
type JWTClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWT mints a signed, time-limited token for the admin.
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	expireHours := defaultTokenLifetimeHours
	if s.cfg != nil && s.cfg.JWT.ExpireHours > 0 {
		expireHours = s.cfg.JWT.ExpireHours
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := JWTClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates signature and expiry and returns the claims.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Login verifies credentials and mints a token. Unknown usernames and wrong
// passwords fail identically with ErrInvalidCredentials. On success the
// account's LastLoginAt is persisted before the token is returned.
func (s *AuthService) Login(username, password string) (*models.Admin, string, time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(username))
	admin, err := s.adminRepo.GetByUsername(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, expiresAt, nil
}

// GetByID resolves a token subject to its account.
func (s *AuthService) GetByID(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	if err := s.VerifyPassword(admin.PasswordHash, currentPassword); err != nil {
		return ErrInvalidPassword
	}

	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hashedPassword
	return s.adminRepo.Update(admin)
}
