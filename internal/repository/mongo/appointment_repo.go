package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/repository"
)

const appointmentCollectionName = "appointments"

// mongoAppointmentRepository implements repository.AppointmentRepository
// using MongoDB.
type mongoAppointmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAppointmentRepository creates a new instance of
// mongoAppointmentRepository.
func NewMongoAppointmentRepository(db *mongo.Database) repository.AppointmentRepository {
	return &mongoAppointmentRepository{
		collection: db.Collection(appointmentCollectionName),
	}
}

// Create inserts a new appointment and returns the assigned id.
func (r *mongoAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
	appointment.ID = primitive.NewObjectID()
	appointment.Removed = false

	result, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an appointment by id, excluding soft-deleted records.
func (r *mongoAppointmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "removed": false}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// GetPage retrieves one page of appointments that are not soft-deleted.
func (r *mongoAppointmentRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	return findPage[domain.Appointment](ctx, r.collection, bson.M{"removed": false}, pageable)
}

// GetPageByIDs retrieves one page of the active appointments whose id is in
// the given list.
func (r *mongoAppointmentRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	filter := bson.M{"_id": bson.M{"$in": ids}, "removed": false}
	return findPage[domain.Appointment](ctx, r.collection, filter, pageable)
}

// GetPageByCoachID retrieves one page of the active appointments referencing
// the given coach.
func (r *mongoAppointmentRepository) GetPageByCoachID(ctx context.Context, coachID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	filter := bson.M{"coachId": coachID, "removed": false}
	return findPage[domain.Appointment](ctx, r.collection, filter, pageable)
}

// GetPageByAthleteID retrieves one page of the active appointments
// referencing the given athlete.
func (r *mongoAppointmentRepository) GetPageByAthleteID(ctx context.Context, athleteID primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.Appointment], error) {
	filter := bson.M{"athleteId": athleteID, "removed": false}
	return findPage[domain.Appointment](ctx, r.collection, filter, pageable)
}

// Update replaces the stored appointment document by id.
func (r *mongoAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": appointment.ID}, appointment)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAppointmentIndexes creates the indexes for the appointments
// collection.
func EnsureAppointmentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
