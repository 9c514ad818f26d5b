package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/dcode-github/property_valuation/controllers"
	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/utils"
)

// AuthMiddleware accepts "Authorization: Bearer <jwt>" and stores the token's
// userID in the request context under controllers.UserIDKey. Rejections are
// APIResponse envelopes with a 401.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := bearerToken(r.Header.Get("Authorization"))
		switch {
		case scheme == "":
			log.Printf("Missing Authorization header from request %s %s", r.Method, r.URL)
			unauthorized(w, "Missing Authorization header")
			return
		case !ok:
			log.Printf("Invalid Authorization header format from request %s %s", r.Method, r.URL)
			unauthorized(w, "Invalid Authorization header format")
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			log.Printf("Rejected token for %s %s: %v", r.Method, r.URL, err)
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken splits an Authorization header. scheme is empty when the
// header is blank; ok reports a well-formed "Bearer <token>" pair.
func bearerToken(header string) (scheme, token string, ok bool) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", "", false
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return parts[0], "", false
	}
	return parts[0], parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="valuations"`)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.APIResponse{Success: false, Message: message}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
