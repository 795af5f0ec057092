package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staffadmin/internal/admin/model"
)

// EnsureAuditIndexes creates indexes for efficient querying of the
// append-only audit log.
func (r *MongoRepository) EnsureAuditIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "actor_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_actor_query"),
		},
		{
			Keys: bson.D{
				{Key: "group_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_group_query"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_audit_created_at"),
		},
	}

	_, err := r.AuditLogs.Indexes().CreateMany(ctx, indexes)
	return err
}

// InsertAuditEntry appends one audit record.
func (r *MongoRepository) InsertAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.AuditLogs.InsertOne(ctx, entry)
	return err
}

// FindAuditEntries returns matching records, newest first.
func (r *MongoRepository) FindAuditEntries(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, error) {
	filter := bson.M{}
	if f.ActorID != "" {
		filter["actor_id"] = f.ActorID
	}
	if f.TargetID != "" {
		filter["target_id"] = f.TargetID
	}
	if f.GroupID != "" {
		filter["group_id"] = f.GroupID
	}
	if f.Action != "" {
		filter["action"] = f.Action
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.AuditLogs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.AuditEntry
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
