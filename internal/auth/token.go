package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/segurtec/api-instalaciones/internal/config"
)

// Claims del token: identidad del usuario más el tenant y el rol,
// para que cada handler pueda acotar sus consultas a la empresa.
type Claims struct {
	UsuarioID uint   `json:"usuario_id"`
	EmpresaID uint   `json:"empresa_id"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

// JWT firma y valida tokens HS256 con la clave de configuración.
type JWT struct {
	signingKey []byte
	ttl        time.Duration
}

func NewJWT(cfg *config.JWTConfig) *JWT {
	return &JWT{
		signingKey: []byte(cfg.SigningKey),
		ttl:        time.Duration(cfg.ExpirationHours) * time.Hour,
	}
}

func (j *JWT) GenerarToken(usuarioID, empresaID uint, rol string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		EmpresaID: empresaID,
		Rol:       rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(j.signingKey)
}

func (j *JWT) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return j.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}
