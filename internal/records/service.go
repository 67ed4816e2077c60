package records

import (
	"context"
	"fmt"

	"github.com/campus-clinic/health-records-service/internal/pagination"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateRecord(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.Create(ctx, createdBy, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create health record: %w", err)
	}
	return record, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]HealthRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	return records, nil
}

func (s *Service) ListRecordsWithPagination(ctx context.Context, params pagination.Params) (*PaginatedRecordListResponse, error) {
	records, total, err := s.repo.ListPage(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}

	return &PaginatedRecordListResponse{
		Records:    records,
		Pagination: params.CalculateMeta(total),
	}, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (*HealthRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) UpdateRecord(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
