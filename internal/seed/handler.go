package seed

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/campus-clinic/health-records-service/internal/db"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SeedDatabase handles POST /api/seed. When the SEED_SECRET env var is set,
// the request must carry it in the X-Seed-Secret header. ?force=true clears
// existing records first.
func (h *Handler) SeedDatabase(w http.ResponseWriter, r *http.Request) {
	if expected := os.Getenv("SEED_SECRET"); expected != "" {
		if r.Header.Get("X-Seed-Secret") != expected {
			writeError(w, http.StatusUnauthorized, "unauthorized, invalid or missing seed secret")
			return
		}
	}

	force := r.URL.Query().Get("force") == "true"

	summary, err := h.service.Seed(r.Context(), force)
	if err != nil {
		var notEmpty *ErrNotEmpty
		if errors.As(err, &notEmpty) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message":       notEmpty.Error(),
				"existingCount": notEmpty.ExistingCount,
			})
			return
		}

		log.Printf("Failed to seed database: %v", err)
		if db.IsUnavailable(err) {
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to seed database")
		return
	}

	log.Printf("✓ Seeded %d sample health records (deleted %d)", summary.InsertedCount, summary.DeletedCount)
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
