package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Athlete is a person who books appointments with coaches and accumulates
// training sheets. The id lists are reverse references: every appointment or
// training sheet created for the athlete appends its id here exactly once,
// in creation order, and entries are never removed (soft-deleting the
// referenced record leaves the entry behind).
type Athlete struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Age                 int                  `bson:"age" json:"age"`
	Height              string               `bson:"height" json:"height"`
	PersonalInformation PersonalInformation  `bson:"personalInformation" json:"personalInformation"`
	AppointmentIDs      []primitive.ObjectID `bson:"appointmentIds" json:"appointmentIds"`
	TrainingSheetIDs    []primitive.ObjectID `bson:"trainingSheetIds" json:"trainingSheetIds"`

	// Removed marks the athlete as soft-deleted. The record stays in the
	// store but is excluded from active queries and by-id lookups.
	Removed bool `bson:"removed" json:"-"`
}
