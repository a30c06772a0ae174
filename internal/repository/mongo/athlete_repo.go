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

const athleteCollectionName = "athletes"

// mongoAthleteRepository implements repository.AthleteRepository using MongoDB.
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a new instance of mongoAthleteRepository.
// It expects a connected *mongo.Database instance.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// Create inserts a new athlete into the database and returns the assigned id.
func (r *mongoAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	athlete.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, athlete)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an athlete by id, excluding soft-deleted records.
func (r *mongoAthleteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	return r.findOne(ctx, bson.M{"_id": id, "removed": false})
}

// GetByIDAny retrieves an athlete by id regardless of the removed flag.
func (r *mongoAthleteRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByDocument retrieves an athlete by their personal information document,
// excluding soft-deleted records.
func (r *mongoAthleteRepository) FindByDocument(ctx context.Context, document string) (*domain.Athlete, error) {
	return r.findOne(ctx, bson.M{"personalInformation.document": document, "removed": false})
}

func (r *mongoAthleteRepository) findOne(ctx context.Context, filter bson.M) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := r.collection.FindOne(ctx, filter).Decode(&athlete)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

// GetPage retrieves one page of athletes that are not soft-deleted.
func (r *mongoAthleteRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Athlete], error) {
	return findPage[domain.Athlete](ctx, r.collection, bson.M{"removed": false}, pageable)
}

// Update replaces the stored athlete document by id.
func (r *mongoAthleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": athlete.ID}, athlete)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAthleteIndexes creates the indexes for the athletes collection.
// Call this once during application startup.
func EnsureAthleteIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "personalInformation.document", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "removed", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
