package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach is a person who runs appointments. Like Athlete it carries reverse
// reference lists maintained by the service layer.
type Coach struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PersonalInformation PersonalInformation  `bson:"personalInformation" json:"personalInformation"`
	AppointmentIDs      []primitive.ObjectID `bson:"appointmentIds" json:"appointmentIds"`
	TrainingSheetIDs    []primitive.ObjectID `bson:"trainingSheetIds" json:"trainingSheetIds"`

	Removed bool `bson:"removed" json:"-"`
}
