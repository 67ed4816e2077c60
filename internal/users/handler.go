package users

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/db"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Printf("Failed to register user: %v", err)

		switch err {
		case ErrMissingName, ErrMissingEmail, ErrMissingPassword, ErrInvalidRole, ErrEmailTaken:
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			if db.IsUnavailable(err) {
				writeError(w, http.StatusServiceUnavailable, "service unavailable")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		log.Printf("Failed to log in user: %v", err)

		switch err {
		case ErrInvalidCredentials, ErrAccountDeactivated:
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			if db.IsUnavailable(err) {
				writeError(w, http.StatusServiceUnavailable, "service unavailable")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.GetMe(r.Context(), principal.UserID)
	if err != nil {
		log.Printf("Failed to get current user: %v", err)

		if err == ErrUserNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if db.IsUnavailable(err) {
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get current user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. There is no server-side session to
// invalidate; the client discards its stored token.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.FromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "user logged out successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
