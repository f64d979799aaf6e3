package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kien091/movie-system/internal/account"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// One generic message for unknown email and wrong password alike.
	user, ok := s.accounts.Authenticate(payload.Email, payload.Password)
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
		return
	}

	token, err := s.store.CreateSession(user.ID)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil, // Set secure flag if using HTTPS
		SameSite: http.SameSiteLaxMode,
	})

	RespondWithJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_token")
	if err == nil {
		s.store.DeleteSession(cookie.Value)
	}

	// Expire the cookie on the client side
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil, // Set secure flag if using HTTPS
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}

// handleReset triggers the password-reset flow. All three outcomes resolve
// to a normal response with an embedded outcome code and message; nothing
// propagates as a transport error.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	outcome, err := s.accounts.ResetPassword(payload.Email)
	if err != nil && outcome != account.ResetDeliveryFailed {
		RespondWithError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{
		"outcome": outcome.String(),
		"message": outcome.Message(),
	})
}
