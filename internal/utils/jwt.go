package utils

import (
	"strconv" // Subject claim formatting
	"time"    // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Unique token ids (jti)
)

// JWT Claims
type Claims struct {
	Username             string `json:"username"` // Custom claim for username
	Email                string `json:"email"`    // Custom claim for email
	Role                 string `json:"role"`     // Custom claim for role
	jwt.RegisteredClaims        // Standard JWT claims (sub, jti, iat, exp)
}

// GenerateJWT creates a signed access token for a user. The token is
// self-contained: identity and role travel in the claims, nothing is
// stored server-side.
func GenerateJWT(userID uint, username, email, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username, // Custom claim for username
		Email:    email,    // Custom claim for email
		Role:     role,     // Custom claim for role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10), // Subject is the user id
			ID:        uuid.NewString(),                       // Unique token id
			IssuedAt:  jwt.NewNumericDate(now),                // Issued at current time
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),       // Expires ttl after issuance
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}

// UserID returns the numeric user id carried in the subject claim.
func (c *Claims) UserID() uint {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)
	return uint(id)
}
