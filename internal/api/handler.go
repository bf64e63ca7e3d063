package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/juristech/lexkit/pkg/entitlement"
	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/session"
	"github.com/juristech/lexkit/pkg/subscription"
)

// Handler serves the entitlement API. The billing provider is optional;
// without one the webhook endpoint rejects all deliveries.
type Handler struct {
	catalog  plan.Catalog
	engine   *entitlement.Engine
	facade   *session.Facade
	manager  *subscription.Manager
	provider subscription.BillingProvider
	log      *slog.Logger
}

func NewHandler(
	catalog plan.Catalog,
	engine *entitlement.Engine,
	facade *session.Facade,
	manager *subscription.Manager,
	provider subscription.BillingProvider,
	log *slog.Logger,
) *Handler {
	if engine == nil {
		panic("api: entitlement.Engine is required")
	}
	if facade == nil {
		panic("api: session.Facade is required")
	}
	if manager == nil {
		panic("api: subscription.Manager is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		catalog:  catalog,
		engine:   engine,
		facade:   facade,
		manager:  manager,
		provider: provider,
		log:      log,
	}
}

// Router assembles the chi route tree.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/plans", h.listPlans)

		// Webhooks authenticate via provider signature, not session.
		r.Post("/billing/webhook", h.billingWebhook)

		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware, requireSession)

			r.Get("/entitlements/features/{id}", h.checkFeature)
			r.Get("/entitlements/actions/{id}", h.checkAction)
			r.Get("/plan-limits", h.planLimits)
			r.Get("/usage", h.usageSummary)
			r.Post("/subscription/change", h.changePlan)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"plans": h.catalog.Plans()})
}

func (h *Handler) checkFeature(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, map[string]any{
		"feature": id,
		"enabled": h.facade.HasFeature(r.Context(), id),
	})
}

func (h *Handler) checkAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	decision := h.facade.CanPerformAction(r.Context(), id)
	respondJSON(w, http.StatusOK, map[string]any{
		"action":   id,
		"decision": decision,
	})
}

func (h *Handler) planLimits(w http.ResponseWriter, r *http.Request) {
	p, ok := h.facade.GetPlanLimits(r.Context())
	if !ok {
		respondError(w, http.StatusNotFound, "no active subscription")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handler) usageSummary(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	info, ok := h.engine.AllUsage(r.Context(), sess.TenantID)
	if !ok {
		respondError(w, http.StatusNotFound, "no active subscription")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"usage": info})
}

type changePlanRequest struct {
	Tier string `json:"tier"`
}

func (h *Handler) changePlan(w http.ResponseWriter, r *http.Request) {
	var req changePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tier, err := plan.ParseTier(req.Tier)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "unknown tier: "+req.Tier)
		return
	}

	sub, err := h.facade.ChangePlan(r.Context(), tier)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, sub)
	case errors.Is(err, session.ErrNoSession):
		respondError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, subscription.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "plan change not allowed from current state")
	case errors.Is(err, subscription.ErrUnknownTier):
		respondError(w, http.StatusUnprocessableEntity, "unknown tier: "+req.Tier)
	case errors.Is(err, subscription.ErrWriteFailed):
		respondError(w, http.StatusServiceUnavailable, "subscription store unavailable")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) billingWebhook(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		respondError(w, http.StatusNotImplemented, "billing provider not configured")
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	event, err := h.provider.ParseWebhook(r.Context(), payload, r.Header.Get("Paddle-Signature"))
	if err != nil {
		h.log.WarnContext(r.Context(), "rejected billing webhook", "error", err)
		respondError(w, http.StatusBadRequest, "invalid webhook")
		return
	}

	if err := h.manager.HandleWebhook(r.Context(), event); err != nil {
		if errors.Is(err, subscription.ErrInvalidTransition) || errors.Is(err, subscription.ErrUnknownTier) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "failed to handle billing webhook",
			"event_type", event.Type, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
