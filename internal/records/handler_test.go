package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/pagination"
	"github.com/gorilla/mux"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	createRecordFunc              func(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error)
	listRecordsFunc               func(ctx context.Context) ([]HealthRecord, error)
	listRecordsWithPaginationFunc func(ctx context.Context, params pagination.Params) (*PaginatedRecordListResponse, error)
	getRecordFunc                 func(ctx context.Context, id string) (*HealthRecord, error)
	updateRecordFunc              func(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error)
	deleteRecordFunc              func(ctx context.Context, id string) error
}

func (m *mockService) CreateRecord(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error) {
	if m.createRecordFunc != nil {
		return m.createRecordFunc(ctx, createdBy, payload)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) ListRecords(ctx context.Context) ([]HealthRecord, error) {
	if m.listRecordsFunc != nil {
		return m.listRecordsFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) ListRecordsWithPagination(ctx context.Context, params pagination.Params) (*PaginatedRecordListResponse, error) {
	if m.listRecordsWithPaginationFunc != nil {
		return m.listRecordsWithPaginationFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) GetRecord(ctx context.Context, id string) (*HealthRecord, error) {
	if m.getRecordFunc != nil {
		return m.getRecordFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) UpdateRecord(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error) {
	if m.updateRecordFunc != nil {
		return m.updateRecordFunc(ctx, id, payload)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) DeleteRecord(ctx context.Context, id string) error {
	if m.deleteRecordFunc != nil {
		return m.deleteRecordFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func authenticatedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	principal := &auth.Principal{
		UserID: "user-123",
		Role:   "staff",
	}
	return req.WithContext(auth.ContextWithPrincipal(req.Context(), principal))
}

// Test CreateRecord Handler

func TestHandlerCreateRecord_Success(t *testing.T) {
	mockSvc := &mockService{
		createRecordFunc: func(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error) {
			return &HealthRecord{
				ID:            "rec-123",
				CreatedBy:     createdBy,
				RecordPayload: payload,
				CreatedAt:     time.Now(),
				UpdatedAt:     time.Now(),
			}, nil
		},
	}

	handler := NewHandler(mockSvc)

	body, _ := json.Marshal(validPayload())
	req := authenticatedRequest(http.MethodPost, "/api/health-records", body)

	rr := httptest.NewRecorder()
	handler.CreateRecord(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}

	var record HealthRecord
	if err := json.NewDecoder(rr.Body).Decode(&record); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if record.ID != "rec-123" {
		t.Errorf("Expected record ID rec-123, got %s", record.ID)
	}
	if record.CreatedBy != "user-123" {
		t.Errorf("Expected createdBy from principal, got %q", record.CreatedBy)
	}
}

func TestHandlerCreateRecord_ValidationError(t *testing.T) {
	serviceCalled := false
	mockSvc := &mockService{
		createRecordFunc: func(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error) {
			serviceCalled = true
			return nil, payload.Validate()
		},
	}

	handler := NewHandler(mockSvc)

	body, _ := json.Marshal(RecordPayload{})
	req := authenticatedRequest(http.MethodPost, "/api/health-records", body)

	rr := httptest.NewRecorder()
	handler.CreateRecord(rr, req)

	if !serviceCalled {
		t.Fatal("Expected service to be called")
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var resp struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Fields) == 0 {
		t.Error("Expected offending fields in validation response")
	}
}

func TestHandlerCreateRecord_InvalidJSON(t *testing.T) {
	handler := NewHandler(&mockService{})

	req := authenticatedRequest(http.MethodPost, "/api/health-records", []byte("{not json"))

	rr := httptest.NewRecorder()
	handler.CreateRecord(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

// Test ListRecords Handler

func TestHandlerListRecords_FullList(t *testing.T) {
	mockSvc := &mockService{
		listRecordsFunc: func(ctx context.Context) ([]HealthRecord, error) {
			return []HealthRecord{
				{ID: "rec-1", RecordPayload: validPayload()},
				{ID: "rec-2", RecordPayload: validPayload()},
			}, nil
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodGet, "/api/health-records", nil)
	rr := httptest.NewRecorder()
	handler.ListRecords(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var records []HealthRecord
	if err := json.NewDecoder(rr.Body).Decode(&records); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
}

func TestHandlerListRecords_EmptyReturnsArray(t *testing.T) {
	mockSvc := &mockService{
		listRecordsFunc: func(ctx context.Context) ([]HealthRecord, error) {
			return nil, nil
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodGet, "/api/health-records", nil)
	rr := httptest.NewRecorder()
	handler.ListRecords(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	body := bytes.TrimSpace(rr.Body.Bytes())
	if string(body) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestHandlerListRecords_Paginated(t *testing.T) {
	mockSvc := &mockService{
		listRecordsWithPaginationFunc: func(ctx context.Context, params pagination.Params) (*PaginatedRecordListResponse, error) {
			if params.Page != 2 || params.Limit != 5 {
				t.Errorf("Expected page 2 limit 5, got page %d limit %d", params.Page, params.Limit)
			}
			return &PaginatedRecordListResponse{
				Records: []HealthRecord{{ID: "rec-6"}},
				Pagination: pagination.Meta{
					CurrentPage:  2,
					PerPage:      5,
					TotalPages:   3,
					TotalRecords: 11,
					HasNext:      true,
					HasPrevious:  true,
				},
			}, nil
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodGet, "/api/health-records?page=2&limit=5", nil)
	rr := httptest.NewRecorder()
	handler.ListRecords(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp PaginatedRecordListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Pagination.TotalRecords != 11 {
		t.Errorf("Expected total 11, got %d", resp.Pagination.TotalRecords)
	}
}

// Test GetRecord Handler

func TestHandlerGetRecord_Success(t *testing.T) {
	mockSvc := &mockService{
		getRecordFunc: func(ctx context.Context, id string) (*HealthRecord, error) {
			return &HealthRecord{ID: id, RecordPayload: validPayload()}, nil
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodGet, "/api/health-records/rec-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "rec-1"})

	rr := httptest.NewRecorder()
	handler.GetRecord(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestHandlerGetRecord_NotFound(t *testing.T) {
	mockSvc := &mockService{
		getRecordFunc: func(ctx context.Context, id string) (*HealthRecord, error) {
			return nil, ErrRecordNotFound
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodGet, "/api/health-records/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	rr := httptest.NewRecorder()
	handler.GetRecord(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

// Test UpdateRecord Handler

func TestHandlerUpdateRecord_Success(t *testing.T) {
	mockSvc := &mockService{
		updateRecordFunc: func(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error) {
			return &HealthRecord{ID: id, RecordPayload: payload}, nil
		},
	}

	handler := NewHandler(mockSvc)

	payload := validPayload()
	payload.Assessment = "Fit for enrollment"
	body, _ := json.Marshal(payload)

	req := authenticatedRequest(http.MethodPut, "/api/health-records/rec-1", body)
	req = mux.SetURLVars(req, map[string]string{"id": "rec-1"})

	rr := httptest.NewRecorder()
	handler.UpdateRecord(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var record HealthRecord
	if err := json.NewDecoder(rr.Body).Decode(&record); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if record.Assessment != "Fit for enrollment" {
		t.Errorf("Expected updated assessment, got %q", record.Assessment)
	}
}

func TestHandlerUpdateRecord_NotFound(t *testing.T) {
	mockSvc := &mockService{
		updateRecordFunc: func(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error) {
			return nil, ErrRecordNotFound
		},
	}

	handler := NewHandler(mockSvc)

	body, _ := json.Marshal(validPayload())
	req := authenticatedRequest(http.MethodPut, "/api/health-records/missing", body)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	rr := httptest.NewRecorder()
	handler.UpdateRecord(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

// Test DeleteRecord Handler

func TestHandlerDeleteRecord_Success(t *testing.T) {
	mockSvc := &mockService{
		deleteRecordFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodDelete, "/api/health-records/rec-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "rec-1"})

	rr := httptest.NewRecorder()
	handler.DeleteRecord(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestHandlerDeleteRecord_NotFound(t *testing.T) {
	mockSvc := &mockService{
		deleteRecordFunc: func(ctx context.Context, id string) error {
			return ErrRecordNotFound
		},
	}

	handler := NewHandler(mockSvc)

	req := authenticatedRequest(http.MethodDelete, "/api/health-records/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	rr := httptest.NewRecorder()
	handler.DeleteRecord(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

// Test GetSchema Handler

func TestHandlerGetSchema(t *testing.T) {
	handler := NewHandler(&mockService{})

	req := authenticatedRequest(http.MethodGet, "/api/health-records/schema", nil)
	rr := httptest.NewRecorder()
	handler.GetSchema(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var schema Schema
	if err := json.NewDecoder(rr.Body).Decode(&schema); err != nil {
		t.Fatalf("Failed to decode schema: %v", err)
	}
	if len(schema.ImmunizationHistory) == 0 {
		t.Error("Expected immunization checklist in schema")
	}
}
