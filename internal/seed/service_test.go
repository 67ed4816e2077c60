package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/campus-clinic/health-records-service/internal/records"
)

// mockRepository implements records.RepositoryInterface for testing
type mockRepository struct {
	count     int
	countErr  error
	deleted   int
	createErr error

	created []records.RecordPayload
	cleared bool
}

func (m *mockRepository) Create(ctx context.Context, createdBy string, payload records.RecordPayload) (*records.HealthRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, payload)
	return &records.HealthRecord{
		ID:            fmt.Sprintf("rec-%d", len(m.created)),
		CreatedBy:     createdBy,
		RecordPayload: payload,
	}, nil
}

func (m *mockRepository) List(ctx context.Context) ([]records.HealthRecord, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListPage(ctx context.Context, limit, offset int) ([]records.HealthRecord, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) Get(ctx context.Context, id string) (*records.HealthRecord, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Update(ctx context.Context, id string, payload records.RecordPayload) (*records.HealthRecord, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (m *mockRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockRepository) DeleteAll(ctx context.Context) (int, error) {
	m.cleared = true
	return m.deleted, nil
}

func TestSeed_EmptyStore(t *testing.T) {
	mockRepo := &mockRepository{count: 0}
	service := NewService(mockRepo, nil)

	summary, err := service.Seed(context.Background(), false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.InsertedCount != 2 {
		t.Errorf("Expected 2 inserted records, got %d", summary.InsertedCount)
	}
	if summary.DeletedCount != 0 {
		t.Errorf("Expected 0 deleted records, got %d", summary.DeletedCount)
	}
	if mockRepo.cleared {
		t.Error("Expected no clear on empty store")
	}
	if summary.Records[0].Name != "Maria Dela Cruz" {
		t.Errorf("Expected Maria Dela Cruz first, got %s", summary.Records[0].Name)
	}
	if summary.Records[1].CourseAndYear != "BS Information Technology - 3rd Year" {
		t.Errorf("Unexpected course for second record: %s", summary.Records[1].CourseAndYear)
	}
}

func TestSeed_NonEmptyWithoutForce(t *testing.T) {
	mockRepo := &mockRepository{count: 5}
	service := NewService(mockRepo, nil)

	_, err := service.Seed(context.Background(), false)
	if err == nil {
		t.Fatal("Expected error for non-empty store without force")
	}

	var notEmpty *ErrNotEmpty
	if !errors.As(err, &notEmpty) {
		t.Fatalf("Expected *ErrNotEmpty, got %T", err)
	}
	if notEmpty.ExistingCount != 5 {
		t.Errorf("Expected existing count 5, got %d", notEmpty.ExistingCount)
	}
	if len(mockRepo.created) != 0 {
		t.Error("Expected no records inserted")
	}
}

func TestSeed_ForceClearsFirst(t *testing.T) {
	mockRepo := &mockRepository{count: 5, deleted: 5}
	service := NewService(mockRepo, nil)

	summary, err := service.Seed(context.Background(), true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !mockRepo.cleared {
		t.Error("Expected existing records to be cleared")
	}
	if summary.DeletedCount != 5 {
		t.Errorf("Expected 5 deleted records, got %d", summary.DeletedCount)
	}
	if summary.InsertedCount != 2 {
		t.Errorf("Expected 2 inserted records, got %d", summary.InsertedCount)
	}
}

func TestSampleRecordsAreValid(t *testing.T) {
	for i, payload := range SampleRecords() {
		if err := payload.Validate(); err != nil {
			t.Errorf("Sample record %d failed validation: %v", i, err)
		}
	}
}
