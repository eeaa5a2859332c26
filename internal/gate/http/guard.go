package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

// SessionCookieName is the cookie carrying the invited-user session token.
const SessionCookieName = "authToken"

type identityCtxKey struct{}

// identityFromCtx returns the identity a guard middleware resolved for this
// request. The zero Identity means no guard ran.
func identityFromCtx(ctx context.Context) domain.Identity {
	if id, ok := ctx.Value(identityCtxKey{}).(domain.Identity); ok {
		return id
	}
	return domain.Identity{}
}

// extractToken pulls the credential from the request. The authToken cookie
// takes precedence over the Authorization header when both are present.
func extractToken(r *http.Request) (token string, fromCookie bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	authz := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(after), false
	}
	return "", false
}

// clearSessionCookie expires the authToken cookie so clients stop replaying
// a credential the server has already rejected.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// writeGuardRejection writes the uniform 401 the guards produce. Every
// rejection cause (missing, unknown, expired, revoked) gets the same body so
// responses never leak which one applied.
func writeGuardRejection(w http.ResponseWriter, clearCookie bool) {
	if clearCookie {
		clearSessionCookie(w)
	}
	httpx.WriteJSON(w, http.StatusUnauthorized, gatesdk.ErrorResponse{
		Error:    "authentication required",
		Redirect: "/login",
	})
}

// GuardMiddleware admits requests carrying either a valid invited-user
// session or a valid admin token. The resolved identity is stored on the
// request context, and access by invited users is recorded as a side effect
// of authentication.
func GuardMiddleware(authService *service.AuthService, adminService *service.AdminService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token, fromCookie := extractToken(r)
			if token == "" {
				writeGuardRejection(w, false)
				return
			}

			// Admin tokens are signed and verified locally, so try them
			// first; the cheap check avoids a store round trip.
			if identity, err := adminService.Verify(token); err == nil {
				ctx = context.WithValue(ctx, identityCtxKey{}, identity)
				ctx = context.WithValue(ctx, httpx.CtxKeyUserID, identity.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			identity, err := authService.Authenticate(ctx, token, clientIP(r), r.UserAgent())
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					writeGuardRejection(w, fromCookie)
					return
				}
				log.Error("guard failed to authenticate session", "err", err)
				httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
					Error: "authentication error",
				})
				return
			}

			ctx = context.WithValue(ctx, identityCtxKey{}, identity)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, identity.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminGuardMiddleware admits only requests carrying a valid admin token.
// Invited-user sessions are rejected the same way as missing credentials.
func AdminGuardMiddleware(adminService *service.AdminService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := extractToken(r)
			if token == "" {
				writeGuardRejection(w, false)
				return
			}

			identity, err := adminService.Verify(token)
			if err != nil {
				writeGuardRejection(w, fromCookie)
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, identity.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientIP resolves the caller's address, honouring proxy headers the same
// way the rate limiter does.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx != -1 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
