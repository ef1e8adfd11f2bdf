package controller

import (
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"ecofinds/pkg/observability"
)

type tokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticator resolves the Authorization header to a user id.
type Authenticator struct {
	verifier tokenVerifier
}

func NewAuthenticator(verifier tokenVerifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// UserID extracts and verifies the bearer token. An empty string means the
// request is unauthenticated and the caller should answer 401.
func (a *Authenticator) UserID(r *http.Request) string {
	header := r.Header.Get("Authorization")
	tok, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tok == "" {
		return ""
	}
	userID, err := a.verifier.Verify(tok)
	if err != nil {
		return ""
	}
	return userID
}

// RequestLogger tags each request with a request id and logs it.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
		reqID := ulid.MustNew(ulid.Now(), entropy).String()

		ctx := observability.WithRequestID(r.Context(), reqID)
		start := time.Now()
		next(w, r.WithContext(ctx))
		observability.LoggerFromContext(ctx).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
