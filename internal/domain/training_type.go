package domain

// TrainingType enumerates the broad kinds of session tracked by the gym.
type TrainingType string

const (
	TrainingTypeStrength    TrainingType = "STRENGTH"
	TrainingTypeHypertrophy TrainingType = "HYPERTROPHY"
	TrainingTypeEndurance   TrainingType = "ENDURANCE"
	TrainingTypeMobility    TrainingType = "MOBILITY"
)

// TrainingTypeRecord describes the workout attached to an appointment or
// training sheet. It is carried as an opaque payload by the services; only
// the patch merge inspects individual fields.
type TrainingTypeRecord struct {
	TrainingType TrainingType `bson:"trainingType" json:"trainingType"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty"`
}
