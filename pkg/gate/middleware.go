package gate

import (
	"encoding/json"
	"net/http"

	"github.com/juristech/lexkit/pkg/session"
)

// UpgradeURL is where blocked responses point the client. A blocked
// request always carries a reason and this path, never a dead end.
const UpgradeURL = "/subscription"

type blockedResponse struct {
	Error      string `json:"error"`
	Reason     string `json:"reason,omitempty"`
	UpgradeURL string `json:"upgrade_url"`
}

// Middleware returns HTTP middleware enforcing a gate spec on every
// request. The session must already be in the request context; requests
// without one are rejected as unauthorized.
//
// Preview mode does not apply to API routes: a denied spec always
// yields 402 with the reason, since there is no content to de-emphasize.
func (g *Gate) Middleware(spec Spec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			result := g.Evaluate(r.Context(), sess.TenantID, spec)
			if result.Mode != ModeAllowed {
				writeBlocked(w, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeBlocked(w http.ResponseWriter, result Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusPaymentRequired)
	_ = json.NewEncoder(w).Encode(blockedResponse{
		Error:      string(result.Mode),
		Reason:     result.Reason,
		UpgradeURL: UpgradeURL,
	})
}
