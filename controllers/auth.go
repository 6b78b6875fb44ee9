package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/middleware"
)

// AuthController runs the OpenID Connect login flow
type AuthController struct {
	log logrus.FieldLogger
}

func NewAuthController(log logrus.FieldLogger) *AuthController {
	return &AuthController{log: log}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		if err := sess.Set("state", state); err != nil {
			http.Error(w, "Failed to store login state", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		// Verify state
		storedState, _ := sess.Get("state").(string)
		if storedState == "" {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Exchange the code for a token
		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err := middleware.StoreSessionPrincipal(sess, principal); err != nil {
			http.Error(w, "Failed to store session", http.StatusInternalServerError)
			return
		}
		_ = sess.Set("user_nickname", claims.DisplayName())

		// Clear the state from session
		_ = sess.Delete("state")

		ac.log.WithFields(logrus.Fields{
			"user_id":     principal.ID,
			"permissions": len(principal.Permissions),
		}).Info("user logged in")

		writeJSON(w, http.StatusOK, principal)
	}
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if err := sess.Flush(); err != nil {
		ac.log.WithError(err).Warn("failed to flush session")
	}
	w.WriteHeader(http.StatusNoContent)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
