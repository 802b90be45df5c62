package crypto

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
)

const defaultTokenTTL = 24 * time.Hour

var ErrSecretNotConfigured = errors.New("token secret is not configured")

var (
	tokenMu   sync.RWMutex
	secretKey []byte
	tokenTTL  = defaultTokenTTL
)

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"user_id"`
	Role   entity.Role   `json:"role"`
}

// ConfigureTokens replaces the signing secret and token lifetime.
// Empty or zero values keep the current ones.
func ConfigureTokens(secret string, ttl time.Duration) {
	tokenMu.Lock()
	defer tokenMu.Unlock()

	if len(secret) != 0 {
		secretKey = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func BuildJWTString(userID entity.UserID, role entity.Role) (string, error) {
	tokenMu.RLock()
	key, ttl := secretKey, tokenTTL
	tokenMu.RUnlock()

	if len(key) == 0 {
		return "", ErrSecretNotConfigured
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return tokenString, nil
}

func GetUserClaims(tokenString string) (Claims, error) {
	tokenMu.RLock()
	key := secretKey
	tokenMu.RUnlock()

	if len(key) == 0 {
		return Claims{}, fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, ErrSecretNotConfigured)
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, usecase.ErrTokenExpired
		}

		return Claims{}, fmt.Errorf("%w: %s", usecase.ErrTokenNotValid, err.Error())
	}

	if !token.Valid {
		return Claims{}, usecase.ErrTokenNotValid
	}

	return claims, nil
}
