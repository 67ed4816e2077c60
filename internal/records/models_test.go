package records

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func validPayload() RecordPayload {
	return RecordPayload{
		PersonalInfo: PersonalInfo{
			Lastname:         "Dela Cruz",
			Firstname:        "Maria",
			Age:              19,
			CourseAndYear:    "BS Nursing - 2nd Year",
			Birthday:         "2006-04-12",
			Sex:              SexFemale,
			PermanentAddress: "123 Mabini St, Quezon City",
			PhoneNumber:      "09171234567",
		},
	}
}

func TestValidate_ValidPayload(t *testing.T) {
	payload := validPayload()
	if err := payload.Validate(); err != nil {
		t.Errorf("Expected valid payload, got error: %v", err)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	payload := RecordPayload{}

	err := payload.Validate()
	if err == nil {
		t.Fatal("Expected validation error for empty payload")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}

	expected := []string{
		"personalInfo.lastname",
		"personalInfo.firstname",
		"personalInfo.age",
		"personalInfo.courseAndYear",
		"personalInfo.birthday",
		"personalInfo.sex",
		"personalInfo.permanentAddress",
		"personalInfo.phoneNumber",
	}
	for _, field := range expected {
		found := false
		for _, f := range verr.Fields {
			if f == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected field %s in validation error, got %v", field, verr.Fields)
		}
	}
}

func TestValidate_InvalidSex(t *testing.T) {
	payload := validPayload()
	payload.PersonalInfo.Sex = "Other"

	err := payload.Validate()
	if err == nil {
		t.Fatal("Expected validation error for invalid sex")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "personalInfo.sex" {
		t.Errorf("Expected only personalInfo.sex, got %v", verr.Fields)
	}
}

func TestValidate_ZeroAge(t *testing.T) {
	payload := validPayload()
	payload.PersonalInfo.Age = 0

	err := payload.Validate()
	if err == nil {
		t.Fatal("Expected validation error for zero age")
	}
	if !strings.Contains(err.Error(), "personalInfo.age") {
		t.Errorf("Expected personalInfo.age in error, got %v", err)
	}
}

func TestChecklistDefaultsToFalse(t *testing.T) {
	var payload RecordPayload
	if err := json.Unmarshal([]byte(`{"personalInfo":{"lastname":"Santos"}}`), &payload); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}

	if payload.PastMedicalHistory.ChickenPox {
		t.Error("Expected omitted checklist items to default to false")
	}
	if payload.PersonalSocialHistory.Smoker.IsSmoker {
		t.Error("Expected omitted smoker flag to default to false")
	}
}

func TestHealthRecordJSONShape(t *testing.T) {
	record := HealthRecord{
		ID:            "rec-1",
		RecordPayload: validPayload(),
	}

	body, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}

	// Payload sections sit at the top level, not nested under a payload key.
	if _, ok := decoded["personalInfo"]; !ok {
		t.Error("Expected personalInfo at top level of record JSON")
	}
	if _, ok := decoded["recordPayload"]; ok {
		t.Error("Did not expect a nested recordPayload key")
	}
}

func TestChecklistSchemaStableOrder(t *testing.T) {
	schema := ChecklistSchema()

	if len(schema.PastMedicalHistory) == 0 {
		t.Fatal("Expected past medical history fields in schema")
	}
	if schema.PastMedicalHistory[0].Key != "chickenPox" {
		t.Errorf("Expected chickenPox first, got %s", schema.PastMedicalHistory[0].Key)
	}

	again := ChecklistSchema()
	for i, field := range schema.PastMedicalHistory {
		if again.PastMedicalHistory[i].Key != field.Key {
			t.Fatalf("Expected stable field order, got %s vs %s", again.PastMedicalHistory[i].Key, field.Key)
		}
	}
}
