package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/campus-clinic/health-records-service/internal/messaging"
	"github.com/campus-clinic/health-records-service/internal/records"
)

// ErrNotEmpty reports that the store already holds records and the caller
// did not ask for a forced reseed.
type ErrNotEmpty struct {
	ExistingCount int
}

func (e *ErrNotEmpty) Error() string {
	return fmt.Sprintf("store already contains %d records, use force to overwrite", e.ExistingCount)
}

// SeededRecord identifies one inserted sample in the summary.
type SeededRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CourseAndYear string `json:"courseAndYear"`
}

// Summary reports the outcome of a seed run.
type Summary struct {
	DeletedCount  int            `json:"deletedCount"`
	InsertedCount int            `json:"insertedCount"`
	Records       []SeededRecord `json:"records"`
}

type Service struct {
	repo      records.RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo records.RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Seed inserts the sample records. A non-empty store fails with *ErrNotEmpty
// unless force is set, in which case all existing records are removed first.
func (s *Service) Seed(ctx context.Context, force bool) (*Summary, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing records: %w", err)
	}

	summary := &Summary{}

	if count > 0 {
		if !force {
			return nil, &ErrNotEmpty{ExistingCount: count}
		}
		deleted, err := s.repo.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to clear existing records: %w", err)
		}
		summary.DeletedCount = deleted
		log.Printf("Cleared %d existing records before reseed", deleted)
	}

	for _, payload := range SampleRecords() {
		record, err := s.repo.Create(ctx, "", payload)
		if err != nil {
			return nil, fmt.Errorf("failed to insert sample record: %w", err)
		}
		summary.InsertedCount++
		summary.Records = append(summary.Records, SeededRecord{
			ID:            record.ID,
			Name:          fmt.Sprintf("%s %s", record.PersonalInfo.Firstname, record.PersonalInfo.Lastname),
			CourseAndYear: record.PersonalInfo.CourseAndYear,
		})
	}

	if s.publisher != nil {
		event := messaging.RecordsSeededEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventRecordsSeeded),
			Data: messaging.RecordsSeededData{
				DeletedCount:  summary.DeletedCount,
				InsertedCount: summary.InsertedCount,
				SeededAt:      time.Now().UTC(),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventRecordsSeeded, event); err != nil {
			log.Printf("Warning: failed to publish %s event: %v", messaging.EventRecordsSeeded, err)
		}
	}

	return summary, nil
}
