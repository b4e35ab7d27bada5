package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository on the jobs collection.
// All queries filter by owner so one user can never touch another's jobs.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionJobs)}
}

type mongoJob struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Owner        string             `bson:"owner"`
	Name         string             `bson:"name"`
	Date         string             `bson:"date"`
	SalaryType   string             `bson:"salary_type"`
	SalaryAmount float64            `bson:"salary_amount"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (m mongoJob) toDomain() domain.Job {
	return domain.Job{
		ID:           m.ID.Hex(),
		Owner:        m.Owner,
		Name:         m.Name,
		Date:         m.Date,
		SalaryType:   m.SalaryType,
		SalaryAmount: m.SalaryAmount,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *JobRepository) Insert(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Owner:        job.Owner,
		Name:         job.Name,
		Date:         job.Date,
		SalaryType:   job.SalaryType,
		SalaryAmount: job.SalaryAmount,
		CreatedAt:    job.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateJob
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id, owner string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	job := mj.toDomain()
	return &job, nil
}

func (r *JobRepository) FindByName(ctx context.Context, owner, name string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"owner": owner, "name": name}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job by name: %w", err)
	}

	job := mj.toDomain()
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, owner string) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoJob
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for _, d := range docs {
		jobs = append(jobs, d.toDomain())
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          job.Name,
		"date":          job.Date,
		"salary_type":   job.SalaryType,
		"salary_amount": job.SalaryAmount,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "owner": job.Owner}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateJob
		}
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id, owner string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the per-owner unique name index that closes the
// duplicate-check race between concurrent submissions.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}},
			Options: uniqueIndex(),
		},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})
	return err
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
