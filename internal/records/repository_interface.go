package records

import "context"

// RepositoryInterface defines the contract for health record data access
type RepositoryInterface interface {
	Create(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error)
	List(ctx context.Context) ([]HealthRecord, error)
	ListPage(ctx context.Context, limit, offset int) ([]HealthRecord, int, error)
	Get(ctx context.Context, id string) (*HealthRecord, error)
	Update(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
