package payrollhandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/compensation"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/platform/metrics"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	service   *payroll.Service
	trail     *audit.Service
	collector *metrics.Collector
}

func NewHandler(service *payroll.Service, trail *audit.Service, collector *metrics.Collector) *Handler {
	return &Handler{service: service, trail: trail, collector: collector}
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
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.With(middleware.RequireRole(auth.RoleHR)).Post("/run", h.handleRun)
		r.With(middleware.RequireRole(auth.RoleHR)).Get("/results", h.handleListResults)
		r.Get("/payslips/{resultID}/download", h.handleDownloadPayslip)
	})
}

// RegisterEmployeeRoutes attaches employee-scoped endpoints to a router
// already mounted under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Get("/salary-structure", h.handleGetStructure)
	r.With(middleware.RequireRole(auth.RoleHR)).Put("/salary-structure", h.handleReplaceStructure)
	r.With(middleware.RequireRole(auth.RoleHR)).Put("/attendance", h.handleUpsertAttendance)
	r.Get("/payroll", h.handleGetResult)
}

type runPayload struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload runPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	year, month, err := shared.ParseYearMonth(payload.Year, payload.Month)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
		return
	}

	summary, err := h.service.RunMonth(r.Context(), user.TenantID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", requestID)
		return
	}
	if h.collector != nil {
		h.collector.RecordPayrollRun()
	}
	h.record(r, user.TenantID, audit.Entry{ActorID: user.UserID, Action: audit.ActionPayrollRun, Detail: map[string]int{
		"year":     summary.Year,
		"month":    int(summary.Month),
		"computed": summary.Computed,
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
	}})
	api.Success(w, summary, requestID)
}

func (h *Handler) handleListResults(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	year, month, err := queryPeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
		return
	}

	results, err := h.service.ListResults(r.Context(), user.TenantID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "results_read_failed", "failed to list payroll results", requestID)
		return
	}
	api.Success(w, results, requestID)
}

func (h *Handler) handleGetResult(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	year, month, err := queryPeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
		return
	}

	result, err := h.service.GetResult(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"), year, month)
	if errors.Is(err, payroll.ErrResultNotFound) {
		api.Fail(w, http.StatusNotFound, "result_not_found", "no payroll result for period", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "result_read_failed", "failed to load payroll result", requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleGetStructure(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	structure, err := h.service.GetSalaryStructure(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"))
	if errors.Is(err, payroll.ErrSalaryStructureNotFound) {
		api.Fail(w, http.StatusNotFound, "structure_not_found", "no salary structure for employee", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "structure_read_failed", "failed to load salary structure", requestID)
		return
	}
	api.Success(w, structure, requestID)
}

type structurePayload struct {
	Components []compensation.SalaryComponent `json:"components"`
}

func (h *Handler) handleReplaceStructure(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload structurePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(payload.Components) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one component is required", requestID)
		return
	}

	structure, err := h.service.ReplaceSalaryStructure(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"), payload.Components)
	if errors.Is(err, compensation.ErrNegativeAmount) {
		api.Fail(w, http.StatusBadRequest, "invalid_component", "component amounts must not be negative", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "structure_update_failed", "failed to replace salary structure", requestID)
		return
	}
	h.record(r, user.TenantID, audit.Entry{ActorID: user.UserID, Action: audit.ActionStructureReplace, EntityID: chi.URLParam(r, "employeeID"), Detail: structure})
	api.Success(w, structure, requestID)
}

type attendancePayload struct {
	Date          string `json:"date"`
	Status        string `json:"status"`
	LeaveApproved bool   `json:"leaveApproved"`
	LateMinutes   int    `json:"lateMinutes"`
	EarlyMinutes  int    `json:"earlyMinutes"`
}

func (h *Handler) handleUpsertAttendance(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload attendancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "invalid attendance date", requestID)
		return
	}

	day := compensation.AttendanceDay{
		Date:          date,
		Status:        payload.Status,
		LeaveApproved: payload.LeaveApproved,
		LateMinutes:   payload.LateMinutes,
		EarlyMinutes:  payload.EarlyMinutes,
	}
	if err := h.service.UpsertAttendanceDay(r.Context(), user.TenantID, chi.URLParam(r, "employeeID"), day); err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_write_failed", "failed to record attendance", requestID)
		return
	}
	api.Success(w, day, requestID)
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	path, err := h.service.GeneratePayslipPDF(r.Context(), user.TenantID, chi.URLParam(r, "resultID"))
	if errors.Is(err, payroll.ErrResultNotFound) {
		api.Fail(w, http.StatusNotFound, "result_not_found", "payroll result not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to generate payslip", requestID)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to open payslip", requestID)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(path))
	http.ServeContent(w, r, filepath.Base(path), fileModTime(file), file)
}

func queryPeriod(r *http.Request) (int, time.Month, error) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return shared.ParseYearMonth(year, month)
}

func fileModTime(file *os.File) time.Time {
	info, err := file.Stat()
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
