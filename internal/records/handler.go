package records

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/db"
	"github.com/campus-clinic/health-records-service/internal/pagination"
	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateRecord handles POST /api/health-records
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var payload RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	createdBy := principalID(r)

	record, err := h.service.CreateRecord(r.Context(), createdBy, payload)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}

		log.Printf("Failed to create health record: %v", err)
		writeStoreError(w, "failed to create health record", err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// ListRecords handles GET /api/health-records. Without page or limit query
// params it returns the full collection, newest first; with either param it
// returns a paginated envelope.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	if pagination.Requested(r) {
		params := pagination.ParseParams(r)

		resp, err := h.service.ListRecordsWithPagination(r.Context(), params)
		if err != nil {
			log.Printf("Failed to list health records: %v", err)
			writeStoreError(w, "failed to list health records", err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
		return
	}

	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		log.Printf("Failed to list health records: %v", err)
		writeStoreError(w, "failed to list health records", err)
		return
	}

	if records == nil {
		records = []HealthRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetRecord handles GET /api/health-records/{id}
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.service.GetRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "health record not found")
			return
		}
		log.Printf("Failed to get health record %s: %v", id, err)
		writeStoreError(w, "failed to get health record", err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// UpdateRecord handles PUT /api/health-records/{id}
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.service.UpdateRecord(r.Context(), id, payload)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		if errors.Is(err, ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "health record not found")
			return
		}
		log.Printf("Failed to update health record %s: %v", id, err)
		writeStoreError(w, "failed to update health record", err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/health-records/{id}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteRecord(r.Context(), id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "health record not found")
			return
		}
		log.Printf("Failed to delete health record %s: %v", id, err)
		writeStoreError(w, "failed to delete health record", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "health record deleted successfully",
	})
}

// GetSchema handles GET /api/health-records/schema. It serves the checklist
// field catalog clients use to render forms in a stable order.
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ChecklistSchema())
}

func principalID(r *http.Request) string {
	if principal, ok := auth.FromContext(r.Context()); ok {
		return principal.UserID
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeValidationError(w http.ResponseWriter, verr *ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": verr.Error(),
		"fields":  verr.Fields,
	})
}

func writeStoreError(w http.ResponseWriter, msg string, err error) {
	if db.IsUnavailable(err) {
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, msg)
}
