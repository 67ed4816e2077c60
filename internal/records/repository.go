package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campus-clinic/health-records-service/internal/messaging"
	"github.com/google/uuid"
)

type Repository struct {
	db        *sql.DB
	publisher messaging.PublisherInterface
}

func NewRepository(db *sql.DB, publisher messaging.PublisherInterface) *Repository {
	return &Repository{db: db, publisher: publisher}
}

const recordColumns = `id, created_by, personal_info, past_medical_history,
	family_medical_history, immunization_history, personal_social_history,
	maternal_menstrual_history, physical_examination, assessment, remarks,
	created_at, updated_at`

// Create persists a new record owned by createdBy (may be empty) and returns
// it with the generated id and timestamps.
func (r *Repository) Create(ctx context.Context, createdBy string, payload RecordPayload) (*HealthRecord, error) {
	sections, err := marshalSections(payload)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO health_records
		(id, created_by, personal_info, past_medical_history, family_medical_history,
		 immunization_history, personal_social_history, maternal_menstrual_history,
		 physical_examination, assessment, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, recordColumns)

	record, err := scanRecord(r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		nullableID(createdBy),
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5], sections[6],
		payload.Assessment,
		payload.Remarks,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert health record: %w", err)
	}

	r.publishRecordEvent(ctx, messaging.EventRecordCreated, record)

	return record, nil
}

// List returns all records, newest first.
func (r *Repository) List(ctx context.Context) ([]HealthRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM health_records
		ORDER BY created_at DESC`, recordColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query health records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListPage returns one page of records, newest first, plus the total count.
func (r *Repository) ListPage(ctx context.Context, limit, offset int) ([]HealthRecord, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM health_records`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count health records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM health_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, recordColumns)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query health records: %w", err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Get returns the record with the given id or ErrRecordNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*HealthRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM health_records
		WHERE id = $1`, recordColumns)

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query health record: %w", err)
	}
	return record, nil
}

// Update fully replaces every section of the record. Last write wins; there
// is no optimistic concurrency control.
func (r *Repository) Update(ctx context.Context, id string, payload RecordPayload) (*HealthRecord, error) {
	sections, err := marshalSections(payload)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE health_records
		SET personal_info = $1,
		    past_medical_history = $2,
		    family_medical_history = $3,
		    immunization_history = $4,
		    personal_social_history = $5,
		    maternal_menstrual_history = $6,
		    physical_examination = $7,
		    assessment = $8,
		    remarks = $9,
		    updated_at = $10
		WHERE id = $11
		RETURNING %s`, recordColumns)

	record, err := scanRecord(r.db.QueryRowContext(ctx, query,
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5], sections[6],
		payload.Assessment,
		payload.Remarks,
		time.Now(),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update health record: %w", err)
	}

	r.publishRecordEvent(ctx, messaging.EventRecordUpdated, record)

	return record, nil
}

// Delete permanently removes the record. No soft delete, no audit trail.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete health record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRecordNotFound
	}

	if r.publisher != nil {
		event := messaging.RecordDeletedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventRecordDeleted),
			Data: messaging.RecordDeletedData{
				RecordID:  id,
				DeletedAt: time.Now().UTC(),
			},
		}
		if err := r.publisher.Publish(ctx, messaging.EventRecordDeleted, event); err != nil {
			log.Printf("Warning: failed to publish %s event: %v", messaging.EventRecordDeleted, err)
		}
	}

	return nil
}

// Count returns the total number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM health_records`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count health records: %w", err)
	}
	return total, nil
}

// DeleteAll removes every record and returns how many were deleted. Used by
// forced seeding only.
func (r *Repository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM health_records`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear health records: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(rows), nil
}

func (r *Repository) publishRecordEvent(ctx context.Context, routingKey string, record *HealthRecord) {
	if r.publisher == nil {
		return
	}
	data := messaging.RecordEventData{
		RecordID:      record.ID,
		CreatedBy:     record.CreatedBy,
		LastName:      record.PersonalInfo.Lastname,
		FirstName:     record.PersonalInfo.Firstname,
		CourseAndYear: record.PersonalInfo.CourseAndYear,
		OccurredAt:    time.Now().UTC(),
	}
	var event interface{}
	switch routingKey {
	case messaging.EventRecordCreated:
		event = messaging.RecordCreatedEvent{BaseEvent: messaging.NewBaseEvent(routingKey), Data: data}
	case messaging.EventRecordUpdated:
		event = messaging.RecordUpdatedEvent{BaseEvent: messaging.NewBaseEvent(routingKey), Data: data}
	default:
		return
	}
	if err := r.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// marshalSections encodes the seven JSONB document sections in column order
// (personal_info .. physical_examination).
func marshalSections(payload RecordPayload) ([][]byte, error) {
	parts := []interface{}{
		payload.PersonalInfo,
		payload.PastMedicalHistory,
		payload.FamilyMedicalHistory,
		payload.ImmunizationHistory,
		payload.PersonalSocialHistory,
		payload.MaternalMenstrualHistory,
		payload.PhysicalExamination,
	}
	out := make([][]byte, 0, len(parts))
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode record section: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*HealthRecord, error) {
	var (
		record    HealthRecord
		createdBy sql.NullString
		sections  [7][]byte
	)

	err := row.Scan(
		&record.ID,
		&createdBy,
		&sections[0], &sections[1], &sections[2], &sections[3], &sections[4], &sections[5], &sections[6],
		&record.Assessment,
		&record.Remarks,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		record.CreatedBy = createdBy.String
	}

	targets := []interface{}{
		&record.PersonalInfo,
		&record.PastMedicalHistory,
		&record.FamilyMedicalHistory,
		&record.ImmunizationHistory,
		&record.PersonalSocialHistory,
		&record.MaternalMenstrualHistory,
		&record.PhysicalExamination,
	}
	for i, t := range targets {
		if len(sections[i]) == 0 {
			continue
		}
		if err := json.Unmarshal(sections[i], t); err != nil {
			return nil, fmt.Errorf("failed to decode record section: %w", err)
		}
	}

	return &record, nil
}

func collectRecords(rows *sql.Rows) ([]HealthRecord, error) {
	var records []HealthRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan health record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating health records: %w", err)
	}
	return records, nil
}
