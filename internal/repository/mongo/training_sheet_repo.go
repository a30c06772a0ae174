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

const trainingSheetCollectionName = "training_sheets"

// mongoTrainingSheetRepository implements repository.TrainingSheetRepository
// using MongoDB.
type mongoTrainingSheetRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingSheetRepository creates a new instance of
// mongoTrainingSheetRepository.
func NewMongoTrainingSheetRepository(db *mongo.Database) repository.TrainingSheetRepository {
	return &mongoTrainingSheetRepository{
		collection: db.Collection(trainingSheetCollectionName),
	}
}

// Create inserts a new training sheet and returns the assigned id.
func (r *mongoTrainingSheetRepository) Create(ctx context.Context, sheet *domain.TrainingSheet) (primitive.ObjectID, error) {
	sheet.ID = primitive.NewObjectID()
	sheet.Removed = false

	result, err := r.collection.InsertOne(ctx, sheet)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a training sheet by id, excluding soft-deleted records.
func (r *mongoTrainingSheetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSheet, error) {
	var sheet domain.TrainingSheet
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "removed": false}).Decode(&sheet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sheet, nil
}

// GetPage retrieves one page of training sheets that are not soft-deleted.
func (r *mongoTrainingSheetRepository) GetPage(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	return findPage[domain.TrainingSheet](ctx, r.collection, bson.M{"removed": false}, pageable)
}

// GetPageByIDs retrieves one page of the active training sheets whose id is
// in the given list.
func (r *mongoTrainingSheetRepository) GetPageByIDs(ctx context.Context, ids []primitive.ObjectID, pageable domain.Pageable) (domain.Page[domain.TrainingSheet], error) {
	filter := bson.M{"_id": bson.M{"$in": ids}, "removed": false}
	return findPage[domain.TrainingSheet](ctx, r.collection, filter, pageable)
}

// Update replaces the stored training sheet document by id.
func (r *mongoTrainingSheetRepository) Update(ctx context.Context, sheet *domain.TrainingSheet) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": sheet.ID}, sheet)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainingSheetIndexes creates the indexes for the training sheets
// collection.
func EnsureTrainingSheetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
