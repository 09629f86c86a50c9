// Package auth resolves request credentials into authenticated users.
package auth

import (
	"context"
	"errors"
	"strings"
)

// User is the identity derived from a bearer credential. It lives only
// for the duration of a request.
type User struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// ErrUnauthorized means the credential is missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")

// Resolver turns a bearer credential into a User.
type Resolver interface {
	Resolve(ctx context.Context, token string) (User, error)
}

// allowlist holds lowercased admin emails. Membership promotes a user to
// admin even when the credential itself carries no admin claim.
type allowlist map[string]struct{}

func newAllowlist(emails []string) allowlist {
	a := make(allowlist, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			a[e] = struct{}{}
		}
	}
	return a
}

func (a allowlist) contains(email string) bool {
	_, ok := a[strings.ToLower(email)]
	return ok
}
