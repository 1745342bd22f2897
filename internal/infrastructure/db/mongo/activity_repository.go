package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projclock/projclock/internal/core/domain"
)

const activitiesCollection = "activities"

type ActivityRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db, coll: db.Collection(activitiesCollection)}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.ProjectActivity) (*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, activitiesCollection)
	if err != nil {
		return nil, err
	}

	created := *a
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return &created, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id int64) (*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.ProjectActivity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return &a, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ProjectActivity, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ActivityRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectActivity, error) {
	return r.list(ctx, bson.M{"project_id": projectID})
}

func (r *ActivityRepository) ListByProjectAndUser(ctx context.Context, projectID, userID int64) ([]domain.ProjectActivity, error) {
	return r.list(ctx, bson.M{"project_id": projectID, "user_id": userID})
}

func (r *ActivityRepository) list(ctx context.Context, filter bson.M) ([]domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	activities := []domain.ProjectActivity{}
	if err := cur.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.ProjectActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the list and report queries.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
