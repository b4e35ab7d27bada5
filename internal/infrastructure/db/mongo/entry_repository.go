package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

const collectionEntries = "daily_entries"

// EntryRepository implements ports.EntryRepository on the daily_entries
// collection. All queries filter by owner.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(collectionEntries)}
}

type mongoEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Owner      string             `bson:"owner"`
	JobName    string             `bson:"job_name"`
	Date       string             `bson:"date"`
	StartTime  string             `bson:"start_time"`
	EndTime    string             `bson:"end_time"`
	TotalHours float64            `bson:"total_hours"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (m mongoEntry) toDomain() domain.DailyEntry {
	return domain.DailyEntry{
		ID:         m.ID.Hex(),
		Owner:      m.Owner,
		JobName:    m.JobName,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		TotalHours: m.TotalHours,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *EntryRepository) Insert(ctx context.Context, entry *domain.DailyEntry) (*domain.DailyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEntry{
		Owner:      entry.Owner,
		JobName:    entry.JobName,
		Date:       entry.Date,
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		TotalHours: entry.TotalHours,
		CreatedAt:  entry.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	created := *entry
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id, owner string) (*domain.DailyEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}

	entry := me.toDomain()
	return &entry, nil
}

func (r *EntryRepository) FindByJobAndDate(ctx context.Context, owner, jobName, date string) (*domain.DailyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEntry
	filter := bson.M{"owner": owner, "job_name": jobName, "date": date}
	if err := r.coll.FindOne(ctx, filter).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry by job and date: %w", err)
	}

	entry := me.toDomain()
	return &entry, nil
}

func (r *EntryRepository) List(ctx context.Context, owner string) ([]domain.DailyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]domain.DailyEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toDomain())
	}
	return entries, nil
}

func (r *EntryRepository) Update(ctx context.Context, entry *domain.DailyEntry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"job_name":    entry.JobName,
		"date":        entry.Date,
		"start_time":  entry.StartTime,
		"end_time":    entry.EndTime,
		"total_hours": entry.TotalHours,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "owner": entry.Owner}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id, owner string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the unique (owner, job_name, date) index that
// enforces the one-entry-per-day invariant under concurrency.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "owner", Value: 1},
				{Key: "job_name", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: uniqueIndex(),
		},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})
	return err
}
