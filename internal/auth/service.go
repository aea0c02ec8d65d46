package auth

import (
	"fmt"
	"time"

	"shift-roster-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the roster identity of an authenticated caller. Role and
// section scope every privileged scheduling operation; full authentication
// flows live outside this service.
type Claims struct {
	UserID    uuid.UUID       `json:"user_id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	SectionID *uuid.UUID      `json:"section_id,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the caller holds the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == models.UserRoleAdmin
}

// IsPrivileged reports whether the caller may act on other users' schedules.
func (c *Claims) IsPrivileged() bool {
	return c.Role.IsPrivileged()
}

// CanManageSection reports whether the caller may mutate schedules in the
// given section: admins anywhere, managers only in their own section.
func (c *Claims) CanManageSection(sectionID uuid.UUID) bool {
	if c.IsAdmin() {
		return true
	}
	if c.Role != models.UserRoleManager {
		return false
	}
	return c.SectionID != nil && *c.SectionID == sectionID
}

// AuthService issues and validates JWT tokens
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{secret: []byte(jwtSecret)}
}

// GenerateJWT issues a signed token for a roster user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		SectionID: user.SectionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "shift-roster-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
