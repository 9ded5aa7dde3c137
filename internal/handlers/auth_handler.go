package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/security"
	"github.com/AnayLodha/kairo/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService     *service.AuthService
	academicService *service.AcademicService
	emailService    *service.EmailService
	csrf            *security.CSRFGenerator

	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, academicService *service.AcademicService, emailService *service.EmailService, csrf *security.CSRFGenerator, oauthProviders map[string]OAuthProvider, oauthRedirectBaseURL string) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		academicService:      academicService,
		emailService:         emailService,
		csrf:                 csrf,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
	}
}

type sessionResponse struct {
	User      *models.User `json:"user"`
	CSRFToken string       `json:"csrf_token"`
}

// Register handles new account creation
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "An account with this email already exists")
			return
		}
		respondValidationError(w, "Error registering user", err)
		return
	}

	// New accounts start with the default subject list
	if err := h.academicService.SeedDefaultSubjects(user.ID); err != nil {
		log.Printf("Warning: failed to seed default subjects for user %d: %v", user.ID, err)
	}

	if h.emailService != nil && h.emailService.IsEnabled() {
		go func(email, name string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.emailService.SendWelcomeEmail(ctx, email, name); err != nil {
				log.Printf("Warning: failed to send welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	// Auto-login after registration
	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error creating session after registration", err)
		return
	}

	h.writeSession(w, r, http.StatusCreated, session, user)
}

// Login handles credential login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error logging in", err)
		return
	}

	h.writeSession(w, r, http.StatusOK, session, user)
}

// Logout invalidates the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session_id"); err == nil {
		_ = h.authService.Logout(cookie.Value)
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, "session_id"))
	respondJSON(w, http.StatusNoContent, nil)
}

// Me returns the authenticated user and a fresh CSRF token
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	token := ""
	if cookie, err := r.Cookie("session_id"); err == nil {
		token, _ = h.csrf.GenerateToken(cookie.Value)
	}

	respondJSON(w, http.StatusOK, sessionResponse{User: user, CSRFToken: token})
}

// RequestPasswordReset sends a reset email if the account exists. The
// response never reveals whether the email is registered.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.authService.RequestPasswordReset(ctx, h.emailService, req.Email); err != nil {
		log.Printf("Error requesting password reset: %v", err)
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"message": "If an account exists for that email, a reset link has been sent",
	})
}

// ConfirmPasswordReset sets a new password using a reset token
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid),
			errors.Is(err, service.ErrResetTokenUsed),
			errors.Is(err, service.ErrResetTokenExpired):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondValidationError(w, "Error resetting password", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

// writeSession sets the session cookie and responds with the user and a
// CSRF token for subsequent state-changing requests.
func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, session *models.Session, user *models.User) {
	http.SetCookie(w, security.CreateSessionCookie(r, "session_id", session.ID, session.ExpiresAt))

	token, err := h.csrf.GenerateToken(session.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error generating CSRF token", err)
		return
	}

	respondJSON(w, status, sessionResponse{User: user, CSRFToken: token})
}
