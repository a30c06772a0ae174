package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAthletePatch_MergesSubset(t *testing.T) {
	target := Athlete{
		Age:    30,
		Height: "180cm",
		PersonalInformation: PersonalInformation{
			Name:         "Marta",
			Surname:      "Garcia",
			DocumentType: DocumentTypeDNI,
			Document:     "X1",
		},
	}

	newAge := 31
	patch := AthletePatch{Age: &newAge}
	patch.Apply(&target)

	assert.Equal(t, 31, target.Age)
	assert.Equal(t, "180cm", target.Height)
	assert.Equal(t, "Marta", target.PersonalInformation.Name)
}

func TestAthletePatch_NestedPersonalInformationMergesFieldByField(t *testing.T) {
	target := Athlete{
		PersonalInformation: PersonalInformation{
			Name:         "Marta",
			Surname:      "Garcia",
			DocumentType: DocumentTypeDNI,
			Document:     "X1",
		},
	}

	// Only the surname changes; the rest of the nested value must survive.
	newSurname := "Lopez"
	patch := AthletePatch{
		PersonalInformation: &PersonalInformationPatch{Surname: &newSurname},
	}
	patch.Apply(&target)

	assert.Equal(t, "Marta", target.PersonalInformation.Name)
	assert.Equal(t, "Lopez", target.PersonalInformation.Surname)
	assert.Equal(t, DocumentTypeDNI, target.PersonalInformation.DocumentType)
	assert.Equal(t, "X1", target.PersonalInformation.Document)
}

func TestAthletePatch_AllNilIsNoOp(t *testing.T) {
	original := Athlete{
		Age:    30,
		Height: "180cm",
		PersonalInformation: PersonalInformation{
			Name:     "Marta",
			Document: "X1",
		},
		AppointmentIDs: []primitive.ObjectID{primitive.NewObjectID()},
	}
	target := original

	AthletePatch{}.Apply(&target)

	assert.Equal(t, original, target)
}

func TestAthletePatch_NonNilEmptySliceReplacesList(t *testing.T) {
	target := Athlete{
		AppointmentIDs: []primitive.ObjectID{primitive.NewObjectID()},
	}

	patch := AthletePatch{AppointmentIDs: []primitive.ObjectID{}}
	patch.Apply(&target)

	assert.Empty(t, target.AppointmentIDs)
	assert.NotNil(t, target.AppointmentIDs)
}

func TestAppointmentPatch_DateAndNestedRecord(t *testing.T) {
	target := Appointment{
		Date: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		TrainingTypeRecord: TrainingTypeRecord{
			TrainingType: TrainingTypeStrength,
			Description:  "heavy squats",
		},
		CoachName: "Jordi",
	}

	newDate := time.Date(2024, 2, 2, 9, 30, 0, 0, time.UTC)
	newType := TrainingTypeMobility
	patch := AppointmentPatch{
		Date: &newDate,
		TrainingTypeRecord: &TrainingTypeRecordPatch{
			TrainingType: &newType,
		},
	}
	patch.Apply(&target)

	assert.Equal(t, newDate, target.Date)
	assert.Equal(t, TrainingTypeMobility, target.TrainingTypeRecord.TrainingType)
	assert.Equal(t, "heavy squats", target.TrainingTypeRecord.Description)
	assert.Equal(t, "Jordi", target.CoachName)
}

func TestTrainingSheetPatch_Observations(t *testing.T) {
	target := TrainingSheet{
		Observations: "old notes",
		TrainingTypeRecord: TrainingTypeRecord{
			TrainingType: TrainingTypeEndurance,
		},
	}

	newObs := "new notes"
	TrainingSheetPatch{Observations: &newObs}.Apply(&target)

	assert.Equal(t, "new notes", target.Observations)
	assert.Equal(t, TrainingTypeEndurance, target.TrainingTypeRecord.TrainingType)
}

func TestPageableOffset(t *testing.T) {
	assert.Equal(t, int64(0), Pageable{Page: 0, Size: 20}.Offset())
	assert.Equal(t, int64(40), Pageable{Page: 2, Size: 20}.Offset())
	assert.Equal(t, int64(0), Pageable{Page: -1, Size: 20}.Offset())
}
