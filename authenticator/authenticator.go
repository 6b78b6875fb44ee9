package authenticator

import (
	"context"
	"errors"
	"strings"

	"github.com/blogem/content-audit/models"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// PermissionsClaim is the claim carrying the caller's capability set
const PermissionsClaim = "permissions"

// Principal builds the acting principal from verified claims.
// Permissions may arrive as a JSON array or a space separated string.
func (c Claims) Principal() (*models.Principal, error) {
	sub, _ := c["sub"].(string)
	if sub == "" {
		return nil, errors.New("claims have no subject")
	}

	p := &models.Principal{ID: sub}
	p.Email, _ = c["email"].(string)

	switch perms := c[PermissionsClaim].(type) {
	case []interface{}:
		for _, v := range perms {
			if s, ok := v.(string); ok && s != "" {
				p.Permissions = append(p.Permissions, s)
			}
		}
	case []string:
		p.Permissions = append(p.Permissions, perms...)
	case string:
		p.Permissions = strings.Fields(perms)
	}

	return p, nil
}

// DisplayName picks the friendliest identifier available in the claims
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if v, ok := c[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
