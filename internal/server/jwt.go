package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mahmoud/recruitify/internal/config"
	"github.com/mahmoud/recruitify/internal/server/middleware"
)

// Claims are the JWT claims carried by staff API tokens.
type Claims struct {
	CompanyKey  string `json:"company_key"`
	CompanyName string `json:"company_name"`
	jwt.RegisteredClaims
}

// GetCompanyKey implements middleware.CompanyClaims.
func (c *Claims) GetCompanyKey() string { return c.CompanyKey }

// GetCompanyName implements middleware.CompanyClaims.
func (c *Claims) GetCompanyName() string { return c.CompanyName }

// JWTService generates and validates staff API tokens.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateToken signs a token for the given company.
func (s *JWTService) GenerateToken(companyKey, companyName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		CompanyKey:  companyKey,
		CompanyName: companyName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AsTokenValidator adapts the service to the middleware interface.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtValidator{service: s}
}

type jwtValidator struct {
	service *JWTService
}

func (v *jwtValidator) ValidateToken(tokenString string) (middleware.CompanyClaims, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
