// Package queue is a Mongo-backed deferred-job store for notification
// dispatch. Jobs become eligible at DueAt and are claimed with an atomic
// pending-to-processing transition, so concurrent workers never dispatch
// the same job twice. Delivery is at-least-once: a worker that dies after
// claiming leaves the job in processing until it is released.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom/pkg/config"
	"classroom/pkg/model"
)

const CollectionName = "Scheduled_notifications"

type Queue interface {
	Enqueue(ctx context.Context, bookingID string, kind model.NotificationKind, dueAt time.Time) error
	// ClaimDue atomically claims up to limit jobs whose DueAt has passed.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*model.ScheduledNotification, error)
	MarkSent(ctx context.Context, id string) error
	// Release returns a claimed job to pending and counts the attempt.
	Release(ctx context.Context, id string) error
}

type mongoQueue struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoQueue(cfg *config.Config) Queue {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoQueue{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (q *mongoQueue) Enqueue(ctx context.Context, bookingID string, kind model.NotificationKind, dueAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.WriteTimeout)
	defer cancel()

	if !kind.Valid() {
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	job := model.ScheduledNotification{
		BookingID: bookingID,
		Kind:      kind,
		DueAt:     dueAt,
		Status:    model.JobPending,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := q.collection.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

func (q *mongoQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*model.ScheduledNotification, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"status":   model.JobPending,
		"due_at":   bson.M{"$lte": now},
		"attempts": bson.M{"$lt": q.cfg.QueueMaxAttempts},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     model.JobProcessing,
			"claimed_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "due_at", Value: 1}}).
		SetReturnDocument(options.After)

	var claimed []*model.ScheduledNotification
	for len(claimed) < limit {
		var job model.ScheduledNotification
		err := q.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&job)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				break
			}
			return claimed, fmt.Errorf("failed to claim notification job: %w", err)
		}
		claimed = append(claimed, &job)
	}

	return claimed, nil
}

func (q *mongoQueue) MarkSent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid job ID: %s", id)
	}

	_, err = q.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": model.JobSent}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

func (q *mongoQueue) Release(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid job ID: %s", id)
	}

	_, err = q.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$set": bson.M{"status": model.JobPending},
			"$inc": bson.M{"attempts": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to release notification job: %w", err)
	}
	return nil
}
