package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a scheduled session linking one athlete and one coach at a
// date-time. The coach/athlete name, surname and document fields are a
// denormalized snapshot taken from the referenced records when the
// appointment is created; they are never refreshed if the person's personal
// information changes later.
type Appointment struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date time.Time          `bson:"date" json:"date"`

	CoachID       primitive.ObjectID `bson:"coachId" json:"coachId"`
	CoachName     string             `bson:"coachName" json:"coachName"`
	CoachSurname  string             `bson:"coachSurname" json:"coachSurname"`
	CoachDocument string             `bson:"coachDocument" json:"coachDocument"`

	AthleteID       primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	AthleteName     string             `bson:"athleteName" json:"athleteName"`
	AthleteSurname  string             `bson:"athleteSurname" json:"athleteSurname"`
	AthleteDocument string             `bson:"athleteDocument" json:"athleteDocument"`

	TrainingTypeRecord TrainingTypeRecord `bson:"trainingTypeRecord" json:"trainingTypeRecord"`

	Removed bool `bson:"removed" json:"-"`
}
