package service

import (
	"errors"
	"fmt"
	"time"

	"deposit-gateway/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims is the token body shared with the authentication layer.
type accessClaims struct {
	Role ports.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService using HS256 JWT.
// Tokens are issued by the authentication layer; Generate exists for
// tooling and tests that need to mint one with the shared secret.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWT token service. An empty issuer
// disables the issuer check.
func NewJWTTokenService(secret string, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Generate creates a signed JWT for the given account and role.
func (s *JWTTokenService) Generate(accountID uuid.UUID, role ports.Role, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT, returning the account and role.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid account ID in token: %w", err)
	}

	switch claims.Role {
	case ports.RoleCustomer, ports.RoleWorker, ports.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	return &ports.TokenClaims{
		AccountID: accountID,
		Role:      claims.Role,
	}, nil
}
