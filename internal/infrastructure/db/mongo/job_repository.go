package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

const jobsCollection = "ingestion_jobs"

// MongoJobRepository persists ingestion jobs. Job ids are the service's
// UUIDs, stored directly as _id.
type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID        string     `bson:"_id"`
	Source    string     `bson:"source"`
	Status    string     `bson:"status"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty"`
}

func toMongoJob(job *domain.IngestionJob) mongoJob {
	return mongoJob{
		ID:        job.ID,
		Source:    job.Source,
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func (mj mongoJob) toDomain() *domain.IngestionJob {
	return &domain.IngestionJob{
		ID:        mj.ID,
		Source:    mj.Source,
		Status:    domain.JobStatus(mj.Status),
		CreatedAt: mj.CreatedAt,
		UpdatedAt: mj.UpdatedAt,
	}
}

func (r *MongoJobRepository) Insert(ctx context.Context, job *domain.IngestionJob) (*domain.IngestionJob, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoJob(job)); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id string) (*domain.IngestionJob, error) {
	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mj); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *MongoJobRepository) Update(ctx context.Context, job *domain.IngestionJob) (*domain.IngestionJob, error) {
	update := bson.M{"$set": bson.M{
		"status":     string(job.Status),
		"updated_at": job.UpdatedAt,
	}}
	res, err := r.coll.UpdateByID(ctx, job.ID, update)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}
