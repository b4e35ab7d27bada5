package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

const collectionActivity = "activity_log"

// ActivityRepository implements ports.ActivityRepository on the
// activity_log audit collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(collectionActivity)}
}

type mongoActivity struct {
	Username  string    `bson:"username"`
	Action    string    `bson:"action"`
	Subject   string    `bson:"subject"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		Username:  event.Username,
		Action:    event.Action,
		Subject:   event.Subject,
		Timestamp: event.Timestamp.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// FindRecent returns up to limit events for owner, newest first.
func (r *ActivityRepository) FindRecent(ctx context.Context, owner string, limit int) ([]domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"username": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	events := make([]domain.ActivityEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.ActivityEvent{
			Username:  d.Username,
			Action:    d.Action,
			Subject:   d.Subject,
			Timestamp: d.Timestamp,
		})
	}
	return events, nil
}

// EnsureIndexes creates the per-user timestamp index used by FindRecent.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
