package records

import (
	"context"

	"github.com/campus-clinic/health-records-service/internal/pagination"
)

// ServiceInterface defines the contract for health record business logic operations
type ServiceInterface interface {
	CreateRecord(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error)
	ListRecords(ctx context.Context) ([]HealthRecord, error)
	ListRecordsWithPagination(ctx context.Context, params pagination.Params) (*PaginatedRecordListResponse, error)
	GetRecord(ctx context.Context, id string) (*HealthRecord, error)
	UpdateRecord(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
