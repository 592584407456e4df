package loanhandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/loan"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
)

type Handler struct {
	service *loan.Service
	trail   *audit.Service
}

func NewHandler(service *loan.Service, trail *audit.Service) *Handler {
	return &Handler{service: service, trail: trail}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireUser).Post("/loans/preview", h.handlePreview)
}

// RegisterEmployeeRoutes attaches loan endpoints to a router already
// mounted under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Get("/loans", h.handleList)
	r.With(middleware.RequireRole(auth.RoleHR)).Post("/loans", h.handleCreate)
}

type termsPayload struct {
	Principal     decimal.Decimal `json:"principal"`
	TenureMonths  int             `json:"tenureMonths"`
	AnnualRatePct decimal.Decimal `json:"annualRatePct"`
}

func (p termsPayload) terms() loan.Terms {
	return loan.Terms{
		Principal:     p.Principal,
		TenureMonths:  p.TenureMonths,
		AnnualRatePct: p.AnnualRatePct,
	}
}

func validationError(err error) bool {
	return errors.Is(err, loan.ErrInvalidPrincipal) ||
		errors.Is(err, loan.ErrInvalidTenure) ||
		errors.Is(err, loan.ErrInvalidRate)
}

// handlePreview computes an installment and full amortization schedule for
// terms supplied in the request without persisting anything.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload termsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	terms := payload.terms()
	installment, err := loan.Installment(terms)
	if validationError(err) {
		api.Fail(w, http.StatusBadRequest, "invalid_terms", err.Error(), requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "loan_preview_failed", "failed to compute installment", requestID)
		return
	}
	schedule, err := loan.Schedule(terms)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "loan_preview_failed", "failed to compute schedule", requestID)
		return
	}

	api.Success(w, map[string]any{
		"installment": installment,
		"schedule":    schedule,
	}, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload termsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	record, err := h.service.CreateLoan(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"), payload.terms())
	if validationError(err) {
		api.Fail(w, http.StatusBadRequest, "invalid_terms", err.Error(), requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "loan_create_failed", "failed to create loan", requestID)
		return
	}
	if h.trail != nil {
		entry := audit.Entry{ActorID: user.UserID, Action: audit.ActionLoanCreate, EntityID: record.ID, RequestID: requestID, Detail: record}
		if err := h.trail.Record(r.Context(), user.TenantID, entry); err != nil {
			log.Printf("audit record failed: %v", err)
		}
	}
	api.Created(w, record, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	loans, err := h.service.ListLoans(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "loans_read_failed", "failed to list loans", requestID)
		return
	}
	api.Success(w, loans, requestID)
}
