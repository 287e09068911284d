package session

import (
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the session cookie consulted when no bearer token is sent.
const CookieName = "platform_session"

// TokenFromRequest extracts the session token from the Authorization header
// (Bearer scheme) or, failing that, the session cookie. Returns empty string
// when neither is present.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok && token != "" {
			return token
		}
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return ""
}

// RequireWorkspace rejects requests without a valid workspace-scoped
// session. The rejection happens before any downstream data access and
// carries the JSON body {"error":"Unauthorized"}.
func RequireWorkspace(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				unauthorized(w)
				return
			}

			sess, err := store.GetByToken(r.Context(), token)
			if err != nil || !sess.IsAuthenticated() {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
