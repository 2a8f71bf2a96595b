package vault

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the JWT claims structure issued by the identity provider.
// The subject is the user id; VaultRole carries the caller's global role.
type AccessClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 string `json:"role"`       // "authenticated" or "anon"
	VaultRole            string `json:"vault_role"` // global role, e.g. "user", "admin"
	SessionID            string `json:"session_id"`
	IsAnonymous          bool   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *AccessClaims) GetUserID() string {
	return c.Subject
}

// Principal converts verified claims into the principal the vault layers
// operate on. Tokens without a usable vault role default to plain user.
func (c *AccessClaims) Principal() Principal {
	role := Role(c.VaultRole)
	if !role.Valid() {
		role = RoleUser
	}
	return Principal{UserID: c.Subject, Role: role}
}
