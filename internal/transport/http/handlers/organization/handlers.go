package organizationhandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/compensation"
	"hrpay/internal/domain/organization"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	service *organization.Service
	trail   *audit.Service
}

func NewHandler(service *organization.Service, trail *audit.Service) *Handler {
	return &Handler{service: service, trail: trail}
}

func (h *Handler) record(r *http.Request, tenantID string, entry audit.Entry) {
	if h.trail == nil {
		return
	}
	entry.RequestID = middleware.GetRequestID(r.Context())
	if err := h.trail.Record(r.Context(), tenantID, entry); err != nil {
		log.Printf("audit record failed: %v", err)
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/organization", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/policy", h.handleGetPolicy)
		r.With(middleware.RequireRole(auth.RoleHR)).Put("/policy", h.handleUpdatePolicy)
		r.Get("/holidays", h.handleListHolidays)
		r.With(middleware.RequireRole(auth.RoleHR)).Post("/holidays", h.handleCreateHoliday)
		r.With(middleware.RequireRole(auth.RoleHR)).Delete("/holidays/{holidayID}", h.handleDeleteHoliday)
	})
	r.With(middleware.RequireUser, middleware.RequireRole(auth.RoleHR)).Get("/audit", h.handleListAudit)
}

func (h *Handler) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	policy, err := h.service.GetPolicy(r.Context(), user.TenantID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "policy_read_failed", "failed to load organization policy", requestID)
		return
	}
	api.Success(w, policy, requestID)
}

func (h *Handler) handleUpdatePolicy(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var policy compensation.OrganizationPolicy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	if err := h.service.UpdatePolicy(r.Context(), user.TenantID, policy); err != nil {
		if errors.Is(err, organization.ErrInvalidPolicy) {
			api.Fail(w, http.StatusBadRequest, "invalid_policy", err.Error(), requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "policy_update_failed", "failed to update organization policy", requestID)
		return
	}
	h.record(r, user.TenantID, audit.Entry{ActorID: user.UserID, Action: audit.ActionPolicyUpdate, Detail: policy})
	api.Success(w, policy, requestID)
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().UTC().Year()
	}

	holidays, err := h.service.ListHolidays(r.Context(), user.TenantID, year)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holidays_read_failed", "failed to list holidays", requestID)
		return
	}
	api.Success(w, holidays, requestID)
}

type holidayPayload struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload holidayPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() || payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "holiday needs a date and a name", requestID)
		return
	}

	id, err := h.service.CreateHoliday(r.Context(), user.TenantID, date, payload.Name, payload.Category)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_create_failed", "failed to create holiday", requestID)
		return
	}
	h.record(r, user.TenantID, audit.Entry{ActorID: user.UserID, Action: audit.ActionHolidayCreate, EntityID: id, Detail: payload})
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.DeleteHoliday(r.Context(), user.TenantID, chi.URLParam(r, "holidayID"))
	if errors.Is(err, organization.ErrHolidayNotFound) {
		api.Fail(w, http.StatusNotFound, "holiday_not_found", "holiday not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_delete_failed", "failed to delete holiday", requestID)
		return
	}
	h.record(r, user.TenantID, audit.Entry{ActorID: user.UserID, Action: audit.ActionHolidayDelete, EntityID: chi.URLParam(r, "holidayID")})
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter := audit.Filter{
		Action:  r.URL.Query().Get("action"),
		ActorID: r.URL.Query().Get("actor"),
	}

	events, err := h.trail.List(r.Context(), user.TenantID, filter, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_read_failed", "failed to list audit events", requestID)
		return
	}
	api.Success(w, events, requestID)
}
