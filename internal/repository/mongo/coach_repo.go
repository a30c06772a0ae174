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

const coachCollectionName = "coaches"

// mongoCoachRepository implements repository.CoachRepository using MongoDB.
type mongoCoachRepository struct {
	collection *mongo.Collection
}

// NewMongoCoachRepository creates a new instance of mongoCoachRepository.
func NewMongoCoachRepository(db *mongo.Database) repository.CoachRepository {
	return &mongoCoachRepository{
		collection: db.Collection(coachCollectionName),
	}
}

// Create inserts a new coach into the database and returns the assigned id.
func (r *mongoCoachRepository) Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	coach.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, coach)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a coach by id, excluding soft-deleted records.
func (r *mongoCoachRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	return r.findOne(ctx, bson.M{"_id": id, "removed": false})
}

// GetByIDAny retrieves a coach by id regardless of the removed flag.
func (r *mongoCoachRepository) GetByIDAny(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByDocument retrieves a coach by their personal information document,
// excluding soft-deleted records.
func (r *mongoCoachRepository) FindByDocument(ctx context.Context, document string) (*domain.Coach, error) {
	return r.findOne(ctx, bson.M{"personalInformation.document": document, "removed": false})
}

func (r *mongoCoachRepository) findOne(ctx context.Context, filter bson.M) (*domain.Coach, error) {
	var coach domain.Coach
	err := r.collection.FindOne(ctx, filter).Decode(&coach)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}

// GetPage retrieves one page of coaches that are not soft-deleted.
func (r *mongoCoachRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Coach], error) {
	return findPage[domain.Coach](ctx, r.collection, bson.M{"removed": false}, pageable)
}

// Update replaces the stored coach document by id.
func (r *mongoCoachRepository) Update(ctx context.Context, coach *domain.Coach) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": coach.ID}, coach)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCoachIndexes creates the indexes for the coaches collection.
func EnsureCoachIndexes(ctx context.Context, collection *mongo.Collection) {
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
