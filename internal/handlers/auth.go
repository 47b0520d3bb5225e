package handlers

import (
	"log"
	"net/http"

	"github.com/gridiron-sim/core/internal/auth"
	"github.com/gridiron-sim/core/pkg/response"
)

// AuthHandler exposes the admin console's OAuth2 login handshake.
type AuthHandler struct {
	gate *auth.Gate
}

func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// HandleLogin redirects the browser to the OAuth2 provider's consent screen.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.gate.LoginURL()
	if err != nil {
		log.Printf("Failed to build login URL: %v", err)
		response.InternalError(w, "Failed to start login")
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// HandleCallback completes the OAuth2 handshake and sets the admin
// session cookie.
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		response.BadRequest(w, "Missing state or code parameter")
		return
	}

	sessionToken, err := h.gate.Callback(r.Context(), state, code)
	if err != nil {
		log.Printf("OAuth2 callback failed: %v", err)
		response.Error(w, http.StatusUnauthorized, "AUTH_FAILED", "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "admin_session",
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	response.Success(w, map[string]interface{}{"message": "login successful"})
}
