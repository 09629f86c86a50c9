package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTResolverValidToken(t *testing.T) {
	r := NewJWTResolver("secret", nil)
	token := signToken(t, "secret", jwt.MapClaims{
		"uid":   "u1",
		"email": "u1@test.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, User{UID: "u1", Email: "u1@test.com"}, user)
}

func TestJWTResolverAdminClaim(t *testing.T) {
	r := NewJWTResolver("secret", nil)
	token := signToken(t, "secret", jwt.MapClaims{"uid": "u1", "admin": true})

	user, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestJWTResolverAllowlistOverride(t *testing.T) {
	r := NewJWTResolver("secret", []string{" Boss@Example.com "})
	token := signToken(t, "secret", jwt.MapClaims{"uid": "u1", "email": "boss@example.com"})

	user, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestJWTResolverRejectsBadTokens(t *testing.T) {
	r := NewJWTResolver("secret", nil)

	// wrong key
	_, err := r.Resolve(context.Background(), signToken(t, "other", jwt.MapClaims{"uid": "u1"}))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// missing uid
	_, err = r.Resolve(context.Background(), signToken(t, "secret", jwt.MapClaims{"email": "x@y.z"}))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// garbage
	_, err = r.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// expired
	expired := signToken(t, "secret", jwt.MapClaims{"uid": "u1", "exp": time.Now().Add(-time.Hour).Unix()})
	_, err = r.Resolve(context.Background(), expired)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver(map[string]User{
		"tok": {UID: "u1", Email: "u1@test.com"},
	}, []string{"u1@test.com"})

	user, err := r.Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
	assert.True(t, user.IsAdmin, "allowlisted email promotes to admin")

	_, err = r.Resolve(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseStaticUsers(t *testing.T) {
	users, err := ParseStaticUsers("a:u1:u1@test.com, b:u2")
	require.NoError(t, err)
	assert.Equal(t, User{UID: "u1", Email: "u1@test.com"}, users["a"])
	assert.Equal(t, User{UID: "u2"}, users["b"])

	_, err = ParseStaticUsers("justatoken")
	assert.Error(t, err)
}
