package utils

import (
	"fmt"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set of the admin token guarding the
// operational endpoints.
type AuthTokenWrapper struct {
	Secret string
}

func GenerateAuthToken(w *AuthTokenWrapper) (string, error) {
	claims := jwt.MapClaims{
		"secret": w.Secret,
		"jti":    random.String(16),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, constants.ErrUnauthorized
	}
	secret, _ := claims["secret"].(string)
	return &AuthTokenWrapper{Secret: secret}, nil
}

func signingKey() []byte {
	return []byte(viper.GetString(constants.ViperSecretKey))
}
