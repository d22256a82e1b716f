package http

import (
	"encoding/json"
	"net/http"

	"github.com/clavis-labs/authcore/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"unauthorized"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns readiness, checking store connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backing store is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      Login
// @Description  Authenticate with email and password. On success the session token is returned in the Authorization response header; the body is empty.
// @Tags         Authentication
// @Accept       json
// @Param        request  body  domain.LoginRequest  true  "Login credentials"
// @Success      204  "Token in Authorization header"
// @Failure      400  {object}  ErrorResponse  "Invalid request body"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      503  {object}  ErrorResponse  "Credential store unavailable"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issued, err := s.authService.Login(r.Context(), req)
	switch err {
	case nil:
		writeBearer(w, issued)
	case domain.ErrStoreUnavailable:
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		// Bad input, unknown account, and wrong password all present the
		// same way.
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
}

// handleRefreshToken godoc
// @Summary      Refresh token
// @Description  Re-sign a session token for the authenticated caller. The new token is returned in the Authorization response header.
// @Tags         Authentication
// @Security     BearerAuth
// @Success      204  "Token in Authorization header"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /auth/refresh_token [post]
func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	principal := GetPrincipal(r.Context())

	issued, err := s.authService.Refresh(r.Context(), principal)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeBearer(w, issued)
}

// handleLogout godoc
// @Summary      Logout
// @Description  Revoke the presented session token until its natural expiry
// @Tags         Authentication
// @Security     BearerAuth
// @Success      204  "Token revoked"
// @Failure      503  {object}  ErrorResponse  "Revocation store unavailable"
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.authService.Logout(r.Context(), GetBearerToken(r.Context())); err != nil {
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleForgot godoc
// @Summary      Request password reset
// @Description  Generate a new credential for the account and mail it to the registered address. The response is identical whether or not the email matches an account.
// @Tags         Authentication
// @Accept       json
// @Param        request  body  domain.PasswordResetRequest  true  "Account email"
// @Success      204  "Accepted"
// @Failure      400  {object}  ErrorResponse  "Invalid request body"
// @Failure      503  {object}  ErrorResponse  "Credential store unavailable"
// @Router       /auth/forgot [post]
func (s *Server) handleForgot(w http.ResponseWriter, r *http.Request) {
	var req domain.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.resetService.RequestReset(r.Context(), req.Email)
	switch err {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case domain.ErrInvalidInput:
		writeError(w, http.StatusBadRequest, "email is required")
	default:
		// Never claim success without a confirmed write
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	}
}

// Account endpoints

// handleMe godoc
// @Summary      Get current principal
// @Description  Returns the authenticated caller's account summary
// @Tags         Accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AccountSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      503  {object}  ErrorResponse  "Credential store unavailable"
// @Router       /me [get]
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	summary, err := s.accountService.Me(r.Context(), GetPrincipal(r.Context()))
	switch err {
	case nil:
		writeJSON(w, http.StatusOK, summary)
	case domain.ErrUnauthenticated:
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	}
}

// handleGetAccount godoc
// @Summary      Get account
// @Description  Returns an account summary. Only the owner or an admin may read it; denial never reveals whether the account exists.
// @Tags         Accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  domain.AccountSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden"
// @Failure      404  {object}  ErrorResponse  "Not found"
// @Router       /accounts/{id} [get]
func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	summary, err := s.accountService.GetAccount(r.Context(), GetPrincipal(r.Context()), id)
	switch err {
	case nil:
		writeJSON(w, http.StatusOK, summary)
	case domain.ErrUnauthenticated:
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case domain.ErrForbidden:
		writeError(w, http.StatusForbidden, "forbidden")
	case domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	}
}

// Response helpers

func writeBearer(w http.ResponseWriter, issued *domain.IssuedToken) {
	w.Header().Set("Authorization", "Bearer "+issued.Token)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
