package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventario-supabase/pkg/jwt"
)

func signedKey(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "supabase",
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
		Role: role,
		Ref:  "abcdefgh",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secreto-del-proyecto"))
	require.NoError(t, err)
	return tok
}

func TestInspect_ClaveAnon(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	info, err := pkgjwt.Inspect(signedKey(t, "anon", exp))
	require.NoError(t, err)

	assert.False(t, info.Opaque)
	assert.Equal(t, "anon", info.Role)
	assert.Equal(t, "abcdefgh", info.Ref)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_ClaveExpirada(t *testing.T) {
	info, err := pkgjwt.Inspect(signedKey(t, "service_role", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.True(t, info.Expired(time.Now()))
}

func TestInspect_ClaveOpaca(t *testing.T) {
	info, err := pkgjwt.Inspect("sb_publishable_abc123")
	require.NoError(t, err)
	assert.True(t, info.Opaque)
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_Errores(t *testing.T) {
	_, err := pkgjwt.Inspect("")
	assert.Error(t, err)

	_, err = pkgjwt.Inspect("no.es.jwt")
	assert.Error(t, err)
}
