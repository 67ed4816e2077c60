package records

// ChecklistField pairs a JSON field key with its display label. The lists
// below are the single ordered definition of every boolean checklist in the
// record; clients render from these instead of iterating object keys.
type ChecklistField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ChecklistSection groups the fields of one checklist section.
type ChecklistSection struct {
	Section string           `json:"section"`
	Fields  []ChecklistField `json:"fields"`
}

var pastMedicalHistoryFields = []ChecklistField{
	{Key: "chickenPox", Label: "Chicken Pox"},
	{Key: "mumps", Label: "Mumps"},
	{Key: "measles", Label: "Measles"},
	{Key: "tuberculosis", Label: "Tuberculosis"},
	{Key: "hepatitis", Label: "Hepatitis"},
	{Key: "hypertension", Label: "Hypertension"},
	{Key: "diabetes", Label: "Diabetes"},
	{Key: "bronchialAsthma", Label: "Bronchial Asthma"},
	{Key: "pepticUlcer", Label: "Peptic Ulcer"},
	{Key: "epilepsy", Label: "Epilepsy"},
	{Key: "thyroidDisease", Label: "Thyroid Disease"},
	{Key: "heartDisease", Label: "Heart Disease"},
	{Key: "previousBloodTransfusion", Label: "Previous Blood Transfusion"},
	{Key: "cancer", Label: "Cancer"},
	{Key: "useOfAnticoagulants", Label: "Use of Anti-coagulants"},
	{Key: "boneFracture", Label: "Bone Fracture"},
}

var familyMedicalHistoryFields = []ChecklistField{
	{Key: "hypertension", Label: "Hypertension"},
	{Key: "diabetes", Label: "Diabetes"},
	{Key: "bronchialAsthma", Label: "Bronchial Asthma"},
	{Key: "thyroidDisease", Label: "Thyroid Disease"},
	{Key: "cancer", Label: "Cancer"},
	{Key: "autoimmuneDisease", Label: "Autoimmune Disease"},
	{Key: "heartDisease", Label: "Heart Disease"},
}

var immunizationHistoryFields = []ChecklistField{
	{Key: "mmr", Label: "MMR"},
	{Key: "antiRabies", Label: "Anti-Rabies"},
	{Key: "hepatitisVaccine", Label: "Hepatitis Vaccine"},
	{Key: "antiTetanus", Label: "Anti-Tetanus"},
	{Key: "fluVaccine", Label: "FLU Vaccine"},
	{Key: "ppv23", Label: "PPV23"},
	{Key: "antiCovid19Vaccine", Label: "Anti-COVID-19 Vaccine"},
}

var physicalExaminationSections = []ChecklistSection{
	{Section: "generalSurvey", Fields: []ChecklistField{
		{Key: "conscious", Label: "Conscious"},
		{Key: "coherent", Label: "Coherent"},
		{Key: "afebrile", Label: "Afebrile"},
		{Key: "febrile", Label: "Febrile"},
		{Key: "notInCPD", Label: "Not in CPD"},
	}},
	{Section: "integumentary", Fields: []ChecklistField{
		{Key: "pallor", Label: "Pallor"},
		{Key: "jaundice", Label: "Jaundice"},
		{Key: "cyanosis", Label: "Cyanosis"},
		{Key: "warmToTouch", Label: "Warm to Touch"},
	}},
	{Section: "chest", Fields: []ChecklistField{
		{Key: "retractions", Label: "Retractions"},
		{Key: "symmetricalChestExpansion", Label: "Symmetrical Chest Expansion"},
		{Key: "asymmetricalChestExpansion", Label: "Asymmetrical Chest Expansion"},
		{Key: "rales", Label: "Rales"},
		{Key: "wheezes", Label: "Wheezes"},
	}},
	{Section: "heart", Fields: []ChecklistField{
		{Key: "adynamic", Label: "Adynamic"},
		{Key: "precordium", Label: "Precordium"},
		{Key: "tachycardic", Label: "Tachycardic"},
		{Key: "irregularRhythm", Label: "Irregular Rhythm"},
		{Key: "regularRhythm", Label: "Regular Rhythm"},
		{Key: "murmur", Label: "Murmur"},
	}},
	{Section: "abdomen", Fields: []ChecklistField{
		{Key: "scar", Label: "Scar"},
		{Key: "flat", Label: "Flat"},
		{Key: "flabby", Label: "Flabby"},
		{Key: "globular", Label: "Globular"},
		{Key: "scaphoid", Label: "Scaphoid"},
		{Key: "dull", Label: "Dull"},
		{Key: "tympanitic", Label: "Tympanitic"},
		{Key: "nonTender", Label: "Non-Tender"},
		{Key: "tender", Label: "Tender"},
		{Key: "organomegaly", Label: "Organomegaly"},
		{Key: "nabs", Label: "NABS"},
	}},
	{Section: "heent", Fields: []ChecklistField{
		{Key: "symmetric", Label: "Symmetric"},
		{Key: "asymmetric", Label: "Asymmetric"},
		{Key: "alarFlaring", Label: "Alar Flaring"},
		{Key: "anicteric", Label: "Anicteric"},
		{Key: "pinkOralMucosa", Label: "Pink Oral Mucosa"},
		{Key: "paleOralMucosa", Label: "Pale Oral Mucosa"},
		{Key: "clad", Label: "CLAD"},
	}},
	{Section: "extremities", Fields: []ChecklistField{
		{Key: "grossDeformities", Label: "Gross Deformities"},
		{Key: "edema", Label: "Edema"},
	}},
}

// Schema describes every checklist in display order.
type Schema struct {
	PastMedicalHistory   []ChecklistField   `json:"pastMedicalHistory"`
	FamilyMedicalHistory []ChecklistField   `json:"familyMedicalHistory"`
	ImmunizationHistory  []ChecklistField   `json:"immunizationHistory"`
	PhysicalExamination  []ChecklistSection `json:"physicalExamination"`
}

// ChecklistSchema returns the checklist definitions shared by validation,
// storage and presentation.
func ChecklistSchema() Schema {
	return Schema{
		PastMedicalHistory:   pastMedicalHistoryFields,
		FamilyMedicalHistory: familyMedicalHistoryFields,
		ImmunizationHistory:  immunizationHistoryFields,
		PhysicalExamination:  physicalExaminationSections,
	}
}
