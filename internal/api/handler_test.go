package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/lexkit/internal/api"
	"github.com/juristech/lexkit/pkg/entitlement"
	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/session"
	"github.com/juristech/lexkit/pkg/subscription"
	"github.com/juristech/lexkit/pkg/usage"
)

var testNow = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

type testServer struct {
	router   http.Handler
	manager  *subscription.Manager
	tenantID uuid.UUID
}

type failingStore struct {
	subscription.Store
	fail bool
}

func (s *failingStore) Save(ctx context.Context, sub *subscription.Subscription) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.Store.Save(ctx, sub)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStore(t, subscription.NewInMemStore())
}

func newTestServerWithStore(t *testing.T, store subscription.Store) *testServer {
	t.Helper()

	clock := func() time.Time { return testNow }
	catalog := plan.Default()

	manager := subscription.NewManager(store, subscription.WithClock(clock))
	engine := entitlement.NewEngine(
		catalog,
		usage.NewStaticSource(func(ctx context.Context, tenantID uuid.UUID) (plan.Tier, error) {
			sub, err := store.Get(ctx, tenantID)
			if err != nil {
				return "", err
			}
			return sub.Tier, nil
		}),
		store.Get,
		entitlement.WithClock(clock),
	)
	facade := session.NewFacade(engine, manager, nil, slog.New(slog.DiscardHandler))
	handler := api.NewHandler(catalog, engine, facade, manager, nil, slog.New(slog.DiscardHandler))

	return &testServer{
		router:   handler.Router(),
		manager:  manager,
		tenantID: uuid.New(),
	}
}

func (s *testServer) request(t *testing.T, method, path, body string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if withIdentity {
		req.Header.Set("X-Tenant-ID", s.tenantID.String())
		req.Header.Set("X-User-Email", "avocat@cabinet-durand.fr")
		req.Header.Set("X-Firm-Name", "Cabinet Durand")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) subscribe(t *testing.T, tier plan.Tier) {
	t.Helper()
	_, err := s.manager.ChangePlan(context.Background(), s.tenantID, tier)
	require.NoError(t, err)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.request(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestHandler_ListPlans(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.request(t, http.MethodGet, "/v1/plans", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	plans, ok := decode(t, rec)["plans"].([]any)
	require.True(t, ok)
	assert.Len(t, plans, 3)
}

func TestHandler_RequiresIdentity(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	for _, path := range []string{
		"/v1/entitlements/features/audit_trail",
		"/v1/entitlements/actions/create_case",
		"/v1/plan-limits",
		"/v1/usage",
	} {
		rec := s.request(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestHandler_CheckFeature(t *testing.T) {
	t.Parallel()

	t.Run("reports enabled feature for subscribed tenant", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.subscribe(t, plan.TierPremium)

		rec := s.request(t, http.MethodGet, "/v1/entitlements/features/"+string(plan.FeatureDocumentAutomation), "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["enabled"])
	})

	t.Run("reports disabled feature without subscription", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := s.request(t, http.MethodGet, "/v1/entitlements/features/"+string(plan.FeatureDocumentAutomation), "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decode(t, rec)["enabled"])
	})
}

func TestHandler_CheckAction(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.subscribe(t, plan.TierBasic)

	rec := s.request(t, http.MethodGet, "/v1/entitlements/actions/create_case", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	decision, ok := decode(t, rec)["decision"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, decision["allowed"])
}

func TestHandler_PlanLimits(t *testing.T) {
	t.Parallel()

	t.Run("returns plan for subscribed tenant", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.subscribe(t, plan.TierEnterprise)

		rec := s.request(t, http.MethodGet, "/v1/plan-limits", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(plan.TierEnterprise), decode(t, rec)["tier"])
	})

	t.Run("returns 404 without subscription", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := s.request(t, http.MethodGet, "/v1/plan-limits", "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_UsageSummary(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.subscribe(t, plan.TierBasic)

	rec := s.request(t, http.MethodGet, "/v1/usage", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	usageMap, ok := decode(t, rec)["usage"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, usageMap, 4)
}

func TestHandler_ChangePlan(t *testing.T) {
	t.Parallel()

	t.Run("activates subscription for valid tier", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := s.request(t, http.MethodPost, "/v1/subscription/change", `{"tier":"premium"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(plan.TierPremium), decode(t, rec)["tier"])

		sub, err := s.manager.Get(context.Background(), s.tenantID)
		require.NoError(t, err)
		assert.Equal(t, plan.TierPremium, sub.Tier)
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := s.request(t, http.MethodPost, "/v1/subscription/change", `{"tier":"platinum"}`, true)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := s.request(t, http.MethodPost, "/v1/subscription/change", `{`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("answers 503 when the store write fails", func(t *testing.T) {
		t.Parallel()

		store := &failingStore{Store: subscription.NewInMemStore(), fail: true}
		s := newTestServerWithStore(t, store)

		rec := s.request(t, http.MethodPost, "/v1/subscription/change", `{"tier":"premium"}`, true)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_BillingWebhook(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.request(t, http.MethodPost, "/v1/billing/webhook", `{}`, false)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
