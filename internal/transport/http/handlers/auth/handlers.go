package authhandler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/auth"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	store  *auth.Store
	secret string
}

func NewHandler(db *pgxpool.Pool, secret string) *Handler {
	return &Handler{store: auth.NewStore(db), secret: secret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", requestID)
		return
	}

	user, err := h.store.FindActiveUserByEmail(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.secret, auth.Claims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
	}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	if err := h.store.UpdateLastLogin(r.Context(), user.ID); err != nil {
		log.Printf("update last login failed: %v", err)
	}

	api.Success(w, map[string]string{"token": token, "role": user.Role}, requestID)
}
