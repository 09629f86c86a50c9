package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// JWTResolver verifies HS256 bearer tokens issued by the identity
// provider. Expected claims: uid (required), email, admin.
type JWTResolver struct {
	secret []byte
	admins allowlist
}

func NewJWTResolver(secret string, adminEmails []string) *JWTResolver {
	return &JWTResolver{
		secret: []byte(secret),
		admins: newAllowlist(adminEmails),
	}
}

func (r *JWTResolver) Resolve(ctx context.Context, tokenStr string) (User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return User{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrUnauthorized
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return User{}, ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	adminClaim, _ := claims["admin"].(bool)

	return User{
		UID:     uid,
		Email:   email,
		IsAdmin: adminClaim || r.admins.contains(email),
	}, nil
}

var _ Resolver = (*JWTResolver)(nil)
