package middleware

import (
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/userctx"
)

// Session keys for the logged-in principal
const (
	SessionUserID      = "user_id"
	SessionUserEmail   = "user_email"
	SessionPermissions = "user_permissions"
)

// TokenParser verifies a bearer token and returns its principal
type TokenParser interface {
	Parse(token string) (*models.Principal, error)
}

// SessionLookup returns the principal stored in the request's session, or nil
type SessionLookup func(r *http.Request) *models.Principal

// SessionPrincipal reads the principal the login callback stored in the session.
// The session middleware must run first.
func SessionPrincipal(r *http.Request) *models.Principal {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}

	userID, _ := sess.Get(SessionUserID).(string)
	if userID == "" {
		return nil
	}

	p := &models.Principal{ID: userID}
	p.Email, _ = sess.Get(SessionUserEmail).(string)
	p.Permissions, _ = sess.Get(SessionPermissions).([]string)
	return p
}

// StoreSessionPrincipal saves p in the session for later requests
func StoreSessionPrincipal(sess session.Store, p *models.Principal) error {
	if err := sess.Set(SessionUserID, p.ID); err != nil {
		return err
	}
	if err := sess.Set(SessionUserEmail, p.Email); err != nil {
		return err
	}
	return sess.Set(SessionPermissions, append([]string(nil), p.Permissions...))
}

// Authenticate resolves the acting principal from a bearer token or the session
// and adds it to the request context. It never rejects a request; gates do.
func Authenticate(tokens TokenParser, fromSession SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var principal *models.Principal

			if token, ok := bearerToken(r); ok && tokens != nil {
				p, err := tokens.Parse(token)
				if err != nil {
					logrus.WithField("request_id", RequestIDFromContext(r.Context())).
						WithError(err).Debug("rejected bearer token")
				} else {
					principal = p
				}
			} else if fromSession != nil {
				principal = fromSession(r)
			}

			if principal != nil {
				r = r.WithContext(userctx.WithPrincipal(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	ah := r.Header.Get("Authorization")
	if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(ah[len("Bearer "):])
	return token, token != ""
}

// RequireAuth rejects requests without an authenticated principal
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetPrincipal(r.Context()) == nil {
			writeUnauthenticated(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
