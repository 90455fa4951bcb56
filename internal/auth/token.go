package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/club-events-service/internal/domain"
)

// Token verification failures. Middleware treats them all as a single
// rejection; the distinction exists for logging and tests.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalid          = errors.New("token invalid")
)

// TokenManager handles issuing and validating JWT tokens. Admin and user
// tokens carry different lifetimes.
type TokenManager struct {
	secret   []byte
	adminTTL time.Duration
	userTTL  time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, adminTTL, userTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), adminTTL: adminTTL, userTTL: userTTL}
}

// Claims describes JWT payload.
type Claims struct {
	PrincipalID int64       `json:"id"`
	Username    string      `json:"username"`
	Role        domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a JWT for the principal, with TTL picked by role.
func (tm *TokenManager) Issue(principalID int64, username string, role domain.Role) (string, time.Time, error) {
	ttl := tm.userTTL
	if role == domain.RoleAdmin {
		ttl = tm.adminTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		PrincipalID: principalID,
		Username:    username,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token and returns its claims.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return ErrTokenInvalid
	}
}
