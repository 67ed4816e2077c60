package seed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerSeedDatabase_Success(t *testing.T) {
	handler := NewHandler(NewService(&mockRepository{count: 0}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rr := httptest.NewRecorder()
	handler.SeedDatabase(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var summary Summary
	if err := json.NewDecoder(rr.Body).Decode(&summary); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if summary.InsertedCount != 2 {
		t.Errorf("Expected 2 inserted records, got %d", summary.InsertedCount)
	}
}

func TestHandlerSeedDatabase_NonEmptyStore(t *testing.T) {
	handler := NewHandler(NewService(&mockRepository{count: 3}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rr := httptest.NewRecorder()
	handler.SeedDatabase(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var resp struct {
		Message       string `json:"message"`
		ExistingCount int    `json:"existingCount"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ExistingCount != 3 {
		t.Errorf("Expected existing count 3, got %d", resp.ExistingCount)
	}
}

func TestHandlerSeedDatabase_Force(t *testing.T) {
	mockRepo := &mockRepository{count: 3, deleted: 3}
	handler := NewHandler(NewService(mockRepo, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/seed?force=true", nil)
	rr := httptest.NewRecorder()
	handler.SeedDatabase(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if !mockRepo.cleared {
		t.Error("Expected forced seed to clear existing records")
	}
}

func TestHandlerSeedDatabase_SecretRequired(t *testing.T) {
	t.Setenv("SEED_SECRET", "topsecret")

	handler := NewHandler(NewService(&mockRepository{count: 0}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rr := httptest.NewRecorder()
	handler.SeedDatabase(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestHandlerSeedDatabase_SecretAccepted(t *testing.T) {
	t.Setenv("SEED_SECRET", "topsecret")

	handler := NewHandler(NewService(&mockRepository{count: 0}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	req.Header.Set("X-Seed-Secret", "topsecret")
	rr := httptest.NewRecorder()
	handler.SeedDatabase(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
