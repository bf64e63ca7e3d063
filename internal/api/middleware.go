package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/session"
)

// Header names the gateway forwards after authenticating the request.
const (
	headerTenantID = "X-Tenant-ID"
	headerEmail    = "X-User-Email"
	headerFirmName = "X-Firm-Name"
)

// sessionMiddleware builds a session from the identity headers set by
// the auth gateway. Requests without a valid tenant id pass through
// without a session; handlers that require one reject them themselves.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := uuid.Parse(r.Header.Get(headerTenantID))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sess := session.Session{
			TenantID: tenantID,
			Email:    r.Header.Get(headerEmail),
			FirmName: r.Header.Get(headerFirmName),
		}
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// requireSession rejects requests that reached a tenant-scoped endpoint
// without identity headers.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
