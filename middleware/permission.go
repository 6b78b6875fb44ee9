package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/httpx"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/userctx"
)

// PermissionChecker decides whether a principal holds a capability
type PermissionChecker interface {
	HasPermission(ctx context.Context, p *models.Principal, capability string) (bool, error)
}

// ClaimsPermissionChecker trusts the permission set attached to the principal at authentication
type ClaimsPermissionChecker struct{}

// HasPermission implements PermissionChecker
func (ClaimsPermissionChecker) HasPermission(_ context.Context, p *models.Principal, capability string) (bool, error) {
	return p.HasPermission(capability), nil
}

// RequirePermission gates next behind capability. It is stateless: 401 without
// a principal, 403 when the checker denies, 500 when the checker fails.
func RequirePermission(checker PermissionChecker, capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := userctx.GetPrincipal(r.Context())
			if principal == nil {
				writeUnauthenticated(w)
				return
			}

			allowed, err := checker.HasPermission(r.Context(), principal, capability)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"request_id": RequestIDFromContext(r.Context()),
					"user_id":    principal.ID,
					"capability": capability,
				}).WithError(err).Error("permission check failed")
				httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "permission check failed", nil)
				return
			}
			if !allowed {
				httpx.WriteError(w, http.StatusForbidden, httpx.CodeForbidden, "missing permission: "+capability, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthenticated, "authentication required", nil)
}
