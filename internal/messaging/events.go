package messaging

import (
	"fmt"
	"time"
)

// Event routing keys as constants
const (
	// Health record events
	EventRecordCreated = "record.created"
	EventRecordUpdated = "record.updated"
	EventRecordDeleted = "record.deleted"
	EventRecordsSeeded = "record.seeded"

	// User events
	EventUserRegistered = "user.registered"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// RecordCreatedEvent represents a health record creation event
type RecordCreatedEvent struct {
	BaseEvent
	Data RecordEventData `json:"data"`
}

// RecordUpdatedEvent represents a health record update event
type RecordUpdatedEvent struct {
	BaseEvent
	Data RecordEventData `json:"data"`
}

type RecordEventData struct {
	RecordID      string    `json:"record_id"`
	CreatedBy     string    `json:"created_by,omitempty"`
	LastName      string    `json:"last_name"`
	FirstName     string    `json:"first_name"`
	CourseAndYear string    `json:"course_and_year"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// RecordDeletedEvent represents a health record deletion event
type RecordDeletedEvent struct {
	BaseEvent
	Data RecordDeletedData `json:"data"`
}

type RecordDeletedData struct {
	RecordID  string    `json:"record_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// RecordsSeededEvent represents a bulk seed of sample records
type RecordsSeededEvent struct {
	BaseEvent
	Data RecordsSeededData `json:"data"`
}

type RecordsSeededData struct {
	DeletedCount  int       `json:"deleted_count"`
	InsertedCount int       `json:"inserted_count"`
	SeededAt      time.Time `json:"seeded_at"`
}

// UserRegisteredEvent represents a new user registration
type UserRegisteredEvent struct {
	BaseEvent
	Data UserRegisteredData `json:"data"`
}

type UserRegisteredData struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     fmt.Sprintf("%d", time.Now().UnixNano()),
		Timestamp:   time.Now().UTC(),
		ServiceName: "health-records-service",
	}
}
