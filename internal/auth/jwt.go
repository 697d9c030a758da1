// Package auth issues and verifies the HS256 bearer tokens that carry the
// authenticated user's identity between requests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims includes the registered claims plus the owning user's ID
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"userId"`
}

// Manager signs and verifies tokens with a shared secret
type Manager struct {
	secret   []byte
	validity time.Duration
}

// NewManager creates a token Manager
func NewManager(secret []byte, validity time.Duration) *Manager {
	return &Manager{secret: secret, validity: validity}
}

// Generate issues a signed token for the user with the configured expiry
func (m *Manager) Generate(userID uint64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(m.secret)
}

// Verify parses the token and returns the user ID it was issued for.
// Expired tokens and tokens with a bad signature are reported as distinct
// errors so the transport layer can answer with different messages.
func (m *Manager) Verify(tokenString string) (uint64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
