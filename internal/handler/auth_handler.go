package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/ratelimit"
	"github.com/prn-tf/printer-portal/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authService *service.AuthService
	limiter     ratelimit.Limiter
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, limiter ratelimit.Limiter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
		logger:      logger.With().Str("handler", "auth").Logger(),
	}
}

// RegisterRoutes registers the unauthenticated auth routes.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/token", h.handleToken)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// handleRegister creates a new account.
func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	message, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: message})
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleToken exchanges form-encoded credentials for a bearer token.
// The form field names (username, password) follow the OAuth2 password
// grant shape; username carries the email.
func (h *AuthHandler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, domain.NewDomainError(domain.ErrValidation, "invalid form body"))
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	allowed, err := h.limiter.Allow(r.Context(), "login:"+clientIP(r))
	if err != nil {
		h.logger.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
	} else if !allowed {
		writeJSON(w, http.StatusTooManyRequests, errorBody{Detail: "too many login attempts"})
		return
	}

	token, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// clientIP returns the request's remote address without the port.
func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] == ':' {
			return host[:i]
		}
	}
	return host
}
