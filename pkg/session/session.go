package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/almacen-admin/internal/domain"
)

// Claims incluye los claims estándar JWT más la identidad del operador que
// emite el componente de login externo. La capa de administración solo los
// parsea; nunca emite tokens en producción.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"idUsuario"`
	Name   string `json:"nombreUsuario"`
	Role   string `json:"rol"`
}

// Generate genera un token de sesión firmado (HS256) para el actor indicado.
// Pensado para pruebas y herramientas locales; en producción el token viene
// del servicio de login.
func Generate(secret string, actor domain.Actor, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", actor.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: actor.ID,
		Name:   actor.Name,
		Role:   actor.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token de sesión y devuelve el actor autenticado.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (domain.Actor, error) {
	if secret == "" {
		return domain.Actor{}, fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return domain.Actor{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("claims inválidos")
	}
	return domain.Actor{ID: claims.UserID, Name: claims.Name, Role: claims.Role}, nil
}
