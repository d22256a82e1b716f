package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Context keys
type contextKey string

const (
	principalContextKey contextKey = "principal"
	bearerContextKey    contextKey = "bearer_token"
)

// AuthMiddleware verifies bearer tokens and attaches the resolved
// principal to the request context. The trust context is the request
// context itself; nothing is read from process-global state.
type AuthMiddleware struct {
	authService driving.AuthService
	resolver    driving.PrincipalResolver
	guard       driving.AccessGuard
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(
	authService driving.AuthService,
	resolver driving.PrincipalResolver,
	guard driving.AccessGuard,
) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		resolver:    resolver,
		guard:       guard,
	}
}

// Authenticate validates the request token and attaches the principal.
// Every failure mode (missing token, bad signature, expiry, revocation,
// unresolvable subject) produces the same unauthorized response.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		subject, err := m.authService.ValidateToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		principal := m.resolver.Resolve(r.Context(), subject)
		if principal.IsAnonymous() {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		ctx = context.WithValue(ctx, bearerContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the authenticated principal holds the given role
func (m *AuthMiddleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := GetPrincipal(r.Context())

			switch m.guard.Authorize(principal, domain.HasRole(role)) {
			case nil:
				next.ServeHTTP(w, r)
			case domain.ErrUnauthenticated:
				writeError(w, http.StatusUnauthorized, "unauthorized")
			default:
				writeError(w, http.StatusForbidden, "forbidden")
			}
		})
	}
}

// GetPrincipal retrieves the resolved principal from the request context.
// Returns the anonymous principal when none was attached.
func GetPrincipal(ctx context.Context) *domain.Principal {
	if ctx == nil {
		return domain.Anonymous()
	}
	principal, ok := ctx.Value(principalContextKey).(*domain.Principal)
	if !ok {
		return domain.Anonymous()
	}
	return principal
}

// GetBearerToken retrieves the verified bearer token from the request context
func GetBearerToken(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(bearerContextKey).(string)
	return token
}

// extractBearerToken extracts the Bearer token from Authorization header
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// Logging middleware

// LoggingMiddleware logs HTTP requests
type LoggingMiddleware struct{}

// NewLoggingMiddleware creates a new LoggingMiddleware
func NewLoggingMiddleware() *LoggingMiddleware {
	return &LoggingMiddleware{}
}

// Handler wraps an http.Handler with request logging
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Recovery middleware

// RecoveryMiddleware recovers from panics
type RecoveryMiddleware struct{}

// NewRecoveryMiddleware creates a new RecoveryMiddleware
func NewRecoveryMiddleware() *RecoveryMiddleware {
	return &RecoveryMiddleware{}
}

// Handler wraps an http.Handler with panic recovery
func (m *RecoveryMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
