package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims que Supabase incluye en sus claves anon/service_role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "anon" | "service_role"
	Ref  string `json:"ref"`  // referencia del proyecto
}

// KeyInfo resumen de una clave de API para el log de arranque.
type KeyInfo struct {
	Opaque    bool // la clave no es un JWT (formato sb_publishable_/sb_secret_)
	Role      string
	Ref       string
	ExpiresAt time.Time
}

// Expired indica si la clave tiene exp en el pasado respecto a now.
func (k KeyInfo) Expired(now time.Time) bool {
	return !k.Opaque && !k.ExpiresAt.IsZero() && now.After(k.ExpiresAt)
}

// Inspect lee los claims de la clave sin verificar la firma: el secreto lo conoce solo el backend.
func Inspect(key string) (KeyInfo, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyInfo{}, fmt.Errorf("jwt: clave vacía")
	}
	if strings.Count(key, ".") != 2 {
		return KeyInfo{Opaque: true}, nil
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(key, &claims); err != nil {
		return KeyInfo{}, fmt.Errorf("jwt: clave malformada: %w", err)
	}
	info := KeyInfo{Role: claims.Role, Ref: claims.Ref}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
