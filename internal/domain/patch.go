package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patch types implement the partial-update merge: every set (non-nil) field
// overwrites the corresponding field of the target record, every nil field
// leaves the target untouched. Nested value objects merge field by field
// through their own patch type rather than being replaced wholesale, so a
// patch carrying only a new surname keeps the stored name and document.
//
// Slice fields use nil as "unset"; a non-nil (possibly empty) slice replaces
// the stored list.

// PersonalInformationPatch is the partial form of PersonalInformation.
type PersonalInformationPatch struct {
	Name         *string       `json:"name"`
	Surname      *string       `json:"surname"`
	DocumentType *DocumentType `json:"documentType"`
	Document     *string       `json:"document"`
}

// Apply merges the set fields of the patch onto target.
func (p PersonalInformationPatch) Apply(target *PersonalInformation) {
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Surname != nil {
		target.Surname = *p.Surname
	}
	if p.DocumentType != nil {
		target.DocumentType = *p.DocumentType
	}
	if p.Document != nil {
		target.Document = *p.Document
	}
}

// TrainingTypeRecordPatch is the partial form of TrainingTypeRecord.
type TrainingTypeRecordPatch struct {
	TrainingType *TrainingType `json:"trainingType"`
	Description  *string       `json:"description"`
}

func (p TrainingTypeRecordPatch) Apply(target *TrainingTypeRecord) {
	if p.TrainingType != nil {
		target.TrainingType = *p.TrainingType
	}
	if p.Description != nil {
		target.Description = *p.Description
	}
}

// AthletePatch is the partial form of Athlete. The ID names the record to
// patch and is never merged.
type AthletePatch struct {
	ID                  primitive.ObjectID
	Age                 *int
	Height              *string
	PersonalInformation *PersonalInformationPatch
	AppointmentIDs      []primitive.ObjectID
	TrainingSheetIDs    []primitive.ObjectID
}

func (p AthletePatch) Apply(target *Athlete) {
	if p.Age != nil {
		target.Age = *p.Age
	}
	if p.Height != nil {
		target.Height = *p.Height
	}
	if p.PersonalInformation != nil {
		p.PersonalInformation.Apply(&target.PersonalInformation)
	}
	if p.AppointmentIDs != nil {
		target.AppointmentIDs = p.AppointmentIDs
	}
	if p.TrainingSheetIDs != nil {
		target.TrainingSheetIDs = p.TrainingSheetIDs
	}
}

// CoachPatch is the partial form of Coach.
type CoachPatch struct {
	ID                  primitive.ObjectID
	PersonalInformation *PersonalInformationPatch
	AppointmentIDs      []primitive.ObjectID
	TrainingSheetIDs    []primitive.ObjectID
}

func (p CoachPatch) Apply(target *Coach) {
	if p.PersonalInformation != nil {
		p.PersonalInformation.Apply(&target.PersonalInformation)
	}
	if p.AppointmentIDs != nil {
		target.AppointmentIDs = p.AppointmentIDs
	}
	if p.TrainingSheetIDs != nil {
		target.TrainingSheetIDs = p.TrainingSheetIDs
	}
}

// AppointmentPatch is the partial form of Appointment.
type AppointmentPatch struct {
	ID                 primitive.ObjectID
	Date               *time.Time
	CoachID            *primitive.ObjectID
	CoachName          *string
	CoachSurname       *string
	CoachDocument      *string
	AthleteID          *primitive.ObjectID
	AthleteName        *string
	AthleteSurname     *string
	AthleteDocument    *string
	TrainingTypeRecord *TrainingTypeRecordPatch
}

func (p AppointmentPatch) Apply(target *Appointment) {
	if p.Date != nil {
		target.Date = *p.Date
	}
	if p.CoachID != nil {
		target.CoachID = *p.CoachID
	}
	if p.CoachName != nil {
		target.CoachName = *p.CoachName
	}
	if p.CoachSurname != nil {
		target.CoachSurname = *p.CoachSurname
	}
	if p.CoachDocument != nil {
		target.CoachDocument = *p.CoachDocument
	}
	if p.AthleteID != nil {
		target.AthleteID = *p.AthleteID
	}
	if p.AthleteName != nil {
		target.AthleteName = *p.AthleteName
	}
	if p.AthleteSurname != nil {
		target.AthleteSurname = *p.AthleteSurname
	}
	if p.AthleteDocument != nil {
		target.AthleteDocument = *p.AthleteDocument
	}
	if p.TrainingTypeRecord != nil {
		p.TrainingTypeRecord.Apply(&target.TrainingTypeRecord)
	}
}

// TrainingSheetPatch is the partial form of TrainingSheet.
type TrainingSheetPatch struct {
	ID                 primitive.ObjectID
	TrainingTypeRecord *TrainingTypeRecordPatch
	Observations       *string
	CoachID            *primitive.ObjectID
	AthleteID          *primitive.ObjectID
	AppointmentID      *primitive.ObjectID
}

func (p TrainingSheetPatch) Apply(target *TrainingSheet) {
	if p.TrainingTypeRecord != nil {
		p.TrainingTypeRecord.Apply(&target.TrainingTypeRecord)
	}
	if p.Observations != nil {
		target.Observations = *p.Observations
	}
	if p.CoachID != nil {
		target.CoachID = *p.CoachID
	}
	if p.AthleteID != nil {
		target.AthleteID = *p.AthleteID
	}
	if p.AppointmentID != nil {
		target.AppointmentID = *p.AppointmentID
	}
}
