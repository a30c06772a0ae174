package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mgarcia/healthlifting-app/internal/domain"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and
// collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection. The initial connect
	// might succeed while the server is unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// pageFindOptions translates a Pageable into mongo find options. A sort
// expression of the form "field" sorts ascending, "-field" descending.
func pageFindOptions(pageable domain.Pageable) *options.FindOptions {
	opts := options.Find().SetSkip(pageable.Offset())
	if pageable.Size > 0 {
		opts.SetLimit(int64(pageable.Size))
	}
	if pageable.Sort != "" {
		field := pageable.Sort
		direction := 1
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			direction = -1
		}
		opts.SetSort(bson.D{{Key: field, Value: direction}})
	}
	return opts
}

// findPage runs a count + paged find for the given filter and decodes the
// results into a domain page.
func findPage[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, pageable domain.Pageable) (domain.Page[T], error) {
	var page domain.Page[T]

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return page, err
	}

	cursor, err := collection.Find(ctx, filter, pageFindOptions(pageable))
	if err != nil {
		return page, err
	}
	defer cursor.Close(ctx)

	content := []T{}
	if err := cursor.All(ctx, &content); err != nil {
		return page, err
	}

	page = domain.Page[T]{
		Content:       content,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
	}
	return page, nil
}
