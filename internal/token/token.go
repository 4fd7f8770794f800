package token

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TTL is how long an issued session token stays valid. There is no
// refresh mechanism: after five hours the client requests a new token.
const TTL = 5 * time.Hour

// Claims carried inside a session token
type Claims struct {
	Email                string `json:"email"` // Identity claim
	Name                 string `json:"name"`  // Display name, informational only
	jwt.RegisteredClaims        // Standard JWT claims
}

// Generate creates a signed session token for the given identity
func Generate(email, name, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		Email: email, // Identity claim
		Name:  name,  // Display name
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)), // Token expires in 5 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// Parse validates a token string and returns its claims
func Parse(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors (covers expiry and bad signatures)
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
