package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingSheet records what was trained and observed in a session. It is
// linked to an athlete, optionally to a coach and to the appointment that
// produced it. Unlike Appointment, no coach existence check or snapshot is
// performed on creation: the coach fields are stored as supplied.
type TrainingSheet struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainingTypeRecord TrainingTypeRecord `bson:"trainingTypeRecord" json:"trainingTypeRecord"`
	Observations       string             `bson:"observations,omitempty" json:"observations,omitempty"`
	CoachID            primitive.ObjectID `bson:"coachId,omitempty" json:"coachId,omitempty"`
	AthleteID          primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	AppointmentID      primitive.ObjectID `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`

	// AttachmentKey is the object-storage key of the media attached to the
	// sheet, empty until an upload has been requested.
	AttachmentKey string `bson:"attachmentKey,omitempty" json:"attachmentKey,omitempty"`

	Removed bool `bson:"removed" json:"-"`
}
