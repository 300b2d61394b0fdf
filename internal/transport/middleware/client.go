package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/MauritiusChief/toki-ante/internal/config"
	"github.com/MauritiusChief/toki-ante/pkg/ctxutil"
)

// ClientTokenHeader carries a freshly issued client token so non-browser
// callers can send it back as a bearer token.
const ClientTokenHeader = "X-Client-Token"

type clientTokens interface {
	Issue(clientID uuid.UUID) (string, error)
	Validate(token string) (uuid.UUID, error)
}

// Client identifies the caller by a signed client token taken from the
// Authorization header or the client cookie. A request without a usable
// cookie gets a new client ID and token. An invalid bearer token is
// rejected with 401.
func Client(tokens clientTokens, cfg config.AuthConfig, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				clientID, err := tokens.Validate(token)
				if err != nil {
					logger.WarnContext(r.Context(), "invalid client token",
						slog.String("error", err.Error()),
						slog.String("path", r.URL.Path),
					)
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxutil.WithClientID(r.Context(), clientID)))
				return
			}

			if c, err := r.Cookie(cfg.CookieName); err == nil && c.Value != "" {
				if clientID, err := tokens.Validate(c.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(ctxutil.WithClientID(r.Context(), clientID)))
					return
				}
			}

			clientID := uuid.New()
			token, err := tokens.Issue(clientID)
			if err != nil {
				logger.ErrorContext(r.Context(), "issue client token", slog.String("error", err.Error()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(cfg.ClientTokenTTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(ClientTokenHeader, token)

			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientID(r.Context(), clientID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
