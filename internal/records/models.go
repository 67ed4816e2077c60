package records

import (
	"time"

	"github.com/campus-clinic/health-records-service/internal/pagination"
)

// Sex enum for personalInfo.sex.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// PersonalInfo holds the student's identifying and contact information.
// Required fields are enforced by RecordPayload.Validate.
type PersonalInfo struct {
	Lastname         string `json:"lastname"`
	Firstname        string `json:"firstname"`
	Middlename       string `json:"middlename,omitempty"`
	Age              int    `json:"age"`
	CourseAndYear    string `json:"courseAndYear"`
	Birthday         string `json:"birthday"`
	Sex              string `json:"sex"`
	PermanentAddress string `json:"permanentAddress"`
	PhoneNumber      string `json:"phoneNumber"`
	CivilStatus      string `json:"civilStatus,omitempty"`
	Religion         string `json:"religion,omitempty"`
	ContactPerson    string `json:"contactPerson,omitempty"`
	ContactAddress   string `json:"contactAddress,omitempty"`
	ContactNumber    string `json:"contactNumber,omitempty"`
}

// PastMedicalHistory is a checklist of prior conditions. Absent fields
// default to false.
type PastMedicalHistory struct {
	ChickenPox               bool `json:"chickenPox"`
	Mumps                    bool `json:"mumps"`
	Measles                  bool `json:"measles"`
	Tuberculosis             bool `json:"tuberculosis"`
	Hepatitis                bool `json:"hepatitis"`
	Hypertension             bool `json:"hypertension"`
	Diabetes                 bool `json:"diabetes"`
	BronchialAsthma          bool `json:"bronchialAsthma"`
	PepticUlcer              bool `json:"pepticUlcer"`
	Epilepsy                 bool `json:"epilepsy"`
	ThyroidDisease           bool `json:"thyroidDisease"`
	HeartDisease             bool `json:"heartDisease"`
	PreviousBloodTransfusion bool `json:"previousBloodTransfusion"`
	Cancer                   bool `json:"cancer"`
	UseOfAnticoagulants      bool `json:"useOfAnticoagulants"`
	BoneFracture             bool `json:"boneFracture"`
}

// FamilyMedicalHistory is a checklist of conditions in the student's family.
type FamilyMedicalHistory struct {
	Hypertension      bool `json:"hypertension"`
	Diabetes          bool `json:"diabetes"`
	BronchialAsthma   bool `json:"bronchialAsthma"`
	ThyroidDisease    bool `json:"thyroidDisease"`
	Cancer            bool `json:"cancer"`
	AutoimmuneDisease bool `json:"autoimmuneDisease"`
	HeartDisease      bool `json:"heartDisease"`
}

// ImmunizationHistory is a checklist of received vaccines.
type ImmunizationHistory struct {
	MMR                bool `json:"mmr"`
	AntiRabies         bool `json:"antiRabies"`
	HepatitisVaccine   bool `json:"hepatitisVaccine"`
	AntiTetanus        bool `json:"antiTetanus"`
	FluVaccine         bool `json:"fluVaccine"`
	PPV23              bool `json:"ppv23"`
	AntiCovid19Vaccine bool `json:"antiCovid19Vaccine"`
}

// Smoker detail fields are only populated when the flag is set.
type Smoker struct {
	IsSmoker     bool   `json:"isSmoker"`
	SticksPerDay string `json:"sticksPerDay,omitempty"`
	Years        string `json:"years,omitempty"`
}

type AlcoholDrinker struct {
	IsDrinker       bool   `json:"isDrinker"`
	TypeOfAlcohol   string `json:"typeOfAlcohol,omitempty"`
	NumberOfBottles string `json:"numberOfBottles,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
}

type IllicitDrugUser struct {
	IsUser     bool   `json:"isUser"`
	TypeOfDrug string `json:"typeOfDrug,omitempty"`
}

type PersonalSocialHistory struct {
	Smoker          Smoker          `json:"smoker"`
	AlcoholDrinker  AlcoholDrinker  `json:"alcoholDrinker"`
	IllicitDrugUser IllicitDrugUser `json:"illicitDrugUser"`
}

// MaternalMenstrualHistory holds free-text obstetric fields, all optional.
type MaternalMenstrualHistory struct {
	NumberOfPregnancy  string `json:"numberOfPregnancy,omitempty"`
	NumberOfAlive      string `json:"numberOfAlive,omitempty"`
	NumberOfStillBirth string `json:"numberOfStillBirth,omitempty"`
	GynePathology      string `json:"gynePathology,omitempty"`
	LMP                string `json:"lmp,omitempty"`
	Menarche           string `json:"menarche,omitempty"`
	Interval           string `json:"interval,omitempty"`
	Duration           string `json:"duration,omitempty"`
	Amount             string `json:"amount,omitempty"`
	Symptoms           string `json:"symptoms,omitempty"`
}

type GeneralSurvey struct {
	Conscious bool `json:"conscious"`
	Coherent  bool `json:"coherent"`
	Afebrile  bool `json:"afebrile"`
	Febrile   bool `json:"febrile"`
	NotInCPD  bool `json:"notInCPD"`
}

type Integumentary struct {
	Pallor      bool `json:"pallor"`
	Jaundice    bool `json:"jaundice"`
	Cyanosis    bool `json:"cyanosis"`
	WarmToTouch bool `json:"warmToTouch"`
}

type Chest struct {
	Retractions                bool `json:"retractions"`
	SymmetricalChestExpansion  bool `json:"symmetricalChestExpansion"`
	AsymmetricalChestExpansion bool `json:"asymmetricalChestExpansion"`
	Rales                      bool `json:"rales"`
	Wheezes                    bool `json:"wheezes"`
}

type Heart struct {
	Adynamic        bool   `json:"adynamic"`
	Precordium      bool   `json:"precordium"`
	PMIAt           string `json:"pmiAt,omitempty"`
	Tachycardic     bool   `json:"tachycardic"`
	IrregularRhythm bool   `json:"irregularRhythm"`
	RegularRhythm   bool   `json:"regularRhythm"`
	Murmur          bool   `json:"murmur"`
}

type Abdomen struct {
	Scar         bool `json:"scar"`
	Flat         bool `json:"flat"`
	Flabby       bool `json:"flabby"`
	Globular     bool `json:"globular"`
	Scaphoid     bool `json:"scaphoid"`
	Dull         bool `json:"dull"`
	Tympanitic   bool `json:"tympanitic"`
	NonTender    bool `json:"nonTender"`
	Tender       bool `json:"tender"`
	Organomegaly bool `json:"organomegaly"`
	NABS         bool `json:"nabs"`
}

type VitalSigns struct {
	BP             string `json:"bp,omitempty"`
	RR             string `json:"rr,omitempty"`
	Temp           string `json:"temp,omitempty"`
	HR             string `json:"hr,omitempty"`
	Weight         string `json:"weight,omitempty"`
	Height         string `json:"height,omitempty"`
	BMI            string `json:"bmi,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
}

type Heent struct {
	Symmetric      bool `json:"symmetric"`
	Asymmetric     bool `json:"asymmetric"`
	AlarFlaring    bool `json:"alarFlaring"`
	Anicteric      bool `json:"anicteric"`
	PinkOralMucosa bool `json:"pinkOralMucosa"`
	PaleOralMucosa bool `json:"paleOralMucosa"`
	CLAD           bool `json:"clad"`
}

type Extremities struct {
	GrossDeformities bool `json:"grossDeformities"`
	Edema            bool `json:"edema"`
}

type VisualAcuity struct {
	OD string `json:"od,omitempty"`
	OS string `json:"os,omitempty"`
	OU string `json:"ou,omitempty"`
}

type PhysicalExamination struct {
	GeneralSurvey GeneralSurvey `json:"generalSurvey"`
	Integumentary Integumentary `json:"integumentary"`
	Chest         Chest         `json:"chest"`
	Heart         Heart         `json:"heart"`
	Abdomen       Abdomen       `json:"abdomen"`
	VitalSigns    VitalSigns    `json:"vitalSigns"`
	Heent         Heent         `json:"heent"`
	Extremities   Extremities   `json:"extremities"`
	VisualAcuity  VisualAcuity  `json:"visualAcuity"`
}

// RecordPayload is the writable portion of a health record. PUT replaces
// every section; there is no partial-patch merging.
type RecordPayload struct {
	PersonalInfo             PersonalInfo             `json:"personalInfo"`
	PastMedicalHistory       PastMedicalHistory       `json:"pastMedicalHistory"`
	FamilyMedicalHistory     FamilyMedicalHistory     `json:"familyMedicalHistory"`
	ImmunizationHistory      ImmunizationHistory      `json:"immunizationHistory"`
	PersonalSocialHistory    PersonalSocialHistory    `json:"personalSocialHistory"`
	MaternalMenstrualHistory MaternalMenstrualHistory `json:"maternalMenstrualHistory"`
	PhysicalExamination      PhysicalExamination      `json:"physicalExamination"`
	Assessment               string                   `json:"assessment"`
	Remarks                  string                   `json:"remarks"`
}

/// HealthRecord is a stored record: the payload plus store-managed identity
// and timestamps.
type HealthRecord struct {
	ID        string `json:"id"`
	CreatedBy string `json:"createdBy,omitempty"`
	RecordPayload
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaginatedRecordListResponse wraps one page of records with pagination metadata
type PaginatedRecordListResponse struct {
	Records    []HealthRecord  `json:"records"`
	Pagination pagination.Meta `json:"pagination"`
}

// Validate checks the required personalInfo fields and the sex enum. It
// returns a *ValidationError naming every offending field, or nil.
func (p *RecordPayload) Validate() error {
	var fields []string

	if p.PersonalInfo.Lastname == "" {
		fields = append(fields, "personalInfo.lastname")
	}
	if p.PersonalInfo.Firstname == "" {
		fields = append(fields, "personalInfo.firstname")
	}
	if p.PersonalInfo.Age <= 0 {
		fields = append(fields, "personalInfo.age")
	}
	if p.PersonalInfo.CourseAndYear == "" {
		fields = append(fields, "personalInfo.courseAndYear")
	}
	if p.PersonalInfo.Birthday == "" {
		fields = append(fields, "personalInfo.birthday")
	}
	if p.PersonalInfo.Sex != SexMale && p.PersonalInfo.Sex != SexFemale {
		fields = append(fields, "personalInfo.sex")
	}
	if p.PersonalInfo.PermanentAddress == "" {
		fields = append(fields, "personalInfo.permanentAddress")
	}
	if p.PersonalInfo.PhoneNumber == "" {
		fields = append(fields, "personalInfo.phoneNumber")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
