package userctx

import (
	"context"

	"github.com/blogem/content-audit/models"
)

// Context key type
type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal adds the acting principal to request context
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal retrieves the acting principal from request context.
// It returns nil for unauthenticated requests.
func GetPrincipal(ctx context.Context) *models.Principal {
	p, ok := ctx.Value(principalKey).(*models.Principal)
	if !ok {
		return nil
	}
	return p
}

// GetUserID retrieves the acting user's ID from request context
func GetUserID(ctx context.Context) string {
	if p := GetPrincipal(ctx); p != nil {
		return p.ID
	}
	return ""
}
