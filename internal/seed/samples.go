package seed

import "github.com/campus-clinic/health-records-service/internal/records"

// SampleRecords returns the demo records inserted by the seeder. Two
// students, one female and one male, exercising most sections of the form.
func SampleRecords() []records.RecordPayload {
	return []records.RecordPayload{
		{
			PersonalInfo: records.PersonalInfo{
				Lastname:         "Dela Cruz",
				Firstname:        "Maria",
				Middlename:       "Santos",
				Age:              20,
				CourseAndYear:    "BS Nursing - 2nd Year",
				Birthday:         "2005-05-15",
				Sex:              records.SexFemale,
				PermanentAddress: "123 Main Street, Manila, Philippines",
				PhoneNumber:      "09171234567",
				CivilStatus:      "Single",
				Religion:         "Roman Catholic",
				ContactPerson:    "Juan Dela Cruz",
				ContactAddress:   "123 Main Street, Manila, Philippines",
				ContactNumber:    "09189876543",
			},
			PastMedicalHistory: records.PastMedicalHistory{
				ChickenPox:      true,
				Measles:         true,
				BronchialAsthma: true,
			},
			FamilyMedicalHistory: records.FamilyMedicalHistory{
				Hypertension: true,
				Diabetes:     true,
				HeartDisease: true,
			},
			ImmunizationHistory: records.ImmunizationHistory{
				MMR:                true,
				HepatitisVaccine:   true,
				AntiTetanus:        true,
				FluVaccine:         true,
				AntiCovid19Vaccine: true,
			},
			MaternalMenstrualHistory: records.MaternalMenstrualHistory{
				NumberOfPregnancy:  "0",
				NumberOfAlive:      "0",
				NumberOfStillBirth: "0",
				GynePathology:      "None",
				LMP:                "2026-01-15",
				Menarche:           "13 years old",
				Interval:           "28-30 days",
				Duration:           "5-6 days",
				Amount:             "Moderate",
				Symptoms:           "Mild cramping",
			},
			PhysicalExamination: records.PhysicalExamination{
				GeneralSurvey: records.GeneralSurvey{
					Conscious: true,
					Coherent:  true,
					Afebrile:  true,
					NotInCPD:  true,
				},
				Abdomen: records.Abdomen{
					Flat:      true,
					NonTender: true,
					NABS:      true,
				},
				Heent: records.Heent{
					Symmetric:      true,
					Anicteric:      true,
					PinkOralMucosa: true,
				},
				VitalSigns: records.VitalSigns{
					BP:             "110/70",
					RR:             "18",
					Temp:           "36.5",
					HR:             "72",
					Weight:         "52 kg",
					Height:         "158 cm",
					BMI:            "20.8",
					Interpretation: "Normal",
				},
				VisualAcuity: records.VisualAcuity{
					OD: "20/30",
					OS: "20/30",
					OU: "20/30",
				},
			},
			Assessment: "Healthy female student. Family history of hypertension and diabetes. Advised for regular check-ups and lifestyle modifications.",
			Remarks:    "Patient encouraged to maintain regular exercise and healthy diet. Follow-up recommended in 6 months.",
		},
		{
			PersonalInfo: records.PersonalInfo{
				Lastname:         "Santos",
				Firstname:        "Juan",
				Middlename:       "Reyes",
				Age:              22,
				CourseAndYear:    "BS Information Technology - 3rd Year",
				Birthday:         "2003-08-22",
				Sex:              records.SexMale,
				PermanentAddress: "456 Oak Avenue, Quezon City, Philippines",
				PhoneNumber:      "09095551234",
				CivilStatus:      "Single",
				Religion:         "Roman Catholic",
				ContactPerson:    "Rosa Santos",
				ContactAddress:   "456 Oak Avenue, Quezon City, Philippines",
				ContactNumber:    "09215556789",
			},
			PastMedicalHistory: records.PastMedicalHistory{
				ChickenPox:   true,
				Mumps:        true,
				BoneFracture: true,
			},
			ImmunizationHistory: records.ImmunizationHistory{
				MMR:                true,
				AntiRabies:         true,
				HepatitisVaccine:   true,
				AntiTetanus:        true,
				AntiCovid19Vaccine: true,
			},
			PersonalSocialHistory: records.PersonalSocialHistory{
				AlcoholDrinker: records.AlcoholDrinker{
					IsDrinker:       true,
					TypeOfAlcohol:   "Beer",
					NumberOfBottles: "1-2",
					Frequency:       "Occasional (1-2x per month)",
				},
			},
			MaternalMenstrualHistory: records.MaternalMenstrualHistory{
				NumberOfPregnancy:  "N/A",
				NumberOfAlive:      "N/A",
				NumberOfStillBirth: "N/A",
				GynePathology:      "N/A",
				LMP:                "N/A",
				Menarche:           "N/A",
				Interval:           "N/A",
				Duration:           "N/A",
				Amount:             "N/A",
				Symptoms:           "N/A",
			},
			PhysicalExamination: records.PhysicalExamination{
				GeneralSurvey: records.GeneralSurvey{
					Conscious: true,
					Coherent:  true,
					Afebrile:  true,
					NotInCPD:  true,
				},
				Abdomen: records.Abdomen{
					Flat:      true,
					NonTender: true,
					NABS:      true,
				},
				Heent: records.Heent{
					Symmetric:      true,
					Anicteric:      true,
					PinkOralMucosa: true,
				},
				VitalSigns: records.VitalSigns{
					BP:             "120/80",
					RR:             "16",
					Temp:           "36.4",
					HR:             "68",
					Weight:         "65 kg",
					Height:         "172 cm",
					BMI:            "22.0",
					Interpretation: "Normal",
				},
				VisualAcuity: records.VisualAcuity{
					OD: "20/20",
					OS: "20/20",
					OU: "20/20",
				},
			},
			Assessment: "Healthy male student. History of bone fracture (healed). Occasional alcohol consumption noted. No significant findings.",
			Remarks:    "Patient advised to avoid smoking and limit alcohol consumption. Continue regular physical activity.",
		},
	}
}
