package auth

import (
	"context"
	"fmt"
	"strings"
)

// StaticResolver maps fixed tokens to users. Development and test use
// only; it never belongs in front of real traffic.
type StaticResolver struct {
	users  map[string]User
	admins allowlist
}

func NewStaticResolver(users map[string]User, adminEmails []string) *StaticResolver {
	return &StaticResolver{users: users, admins: newAllowlist(adminEmails)}
}

func (r *StaticResolver) Resolve(ctx context.Context, token string) (User, error) {
	u, ok := r.users[token]
	if !ok {
		return User{}, ErrUnauthorized
	}
	if r.admins.contains(u.Email) {
		u.IsAdmin = true
	}
	return u, nil
}

// ParseStaticUsers parses the STATIC_USERS value: comma-separated entries
// of the form token:uid[:email].
func ParseStaticUsers(value string) (map[string]User, error) {
	users := make(map[string]User)
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid static user entry %q", entry)
		}
		u := User{UID: parts[1]}
		if len(parts) == 3 {
			u.Email = parts[2]
		}
		users[parts[0]] = u
	}
	return users, nil
}

var _ Resolver = (*StaticResolver)(nil)
