package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Groups     *mongo.Collection
	AdminUsers *mongo.Collection
	AuditLogs  *mongo.Collection
	Client     *mongo.Client // for transactions
}

func NewMongoRepository(db *mongo.Database, groupsCollection, adminUsersCollection, auditLogsCollection string) *MongoRepository {
	return &MongoRepository{
		Groups:     db.Collection(groupsCollection),
		AdminUsers: db.Collection(adminUsersCollection),
		AuditLogs:  db.Collection(auditLogsCollection),
		Client:     db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Groups: machine key unique among live groups
	idxGroupName := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_group_name"),
	}

	// 2. Groups: parent lookup for hierarchy assembly
	idxGroupParent := mongo.IndexModel{
		Keys:    bson.D{{Key: "parent_group_id", Value: 1}},
		Options: options.Index().SetName("group_parent_lookup"),
	}

	_, err := r.Groups.Indexes().CreateMany(ctx, []mongo.IndexModel{idxGroupName, idxGroupParent})
	if err != nil {
		return err
	}

	// 3. Admin users: one account per email
	idxAdminEmail := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_admin_email"),
	}

	// 4. Admin users: pending list fetch
	idxAdminStatus := mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("admin_status_lookup"),
	}

	_, err = r.AdminUsers.Indexes().CreateMany(ctx, []mongo.IndexModel{idxAdminEmail, idxAdminStatus})
	return err
}

func isDuplicateKeyErr(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

var _ StaffRepository = (*MongoRepository)(nil)
var _ AuditRepository = (*MongoRepository)(nil)
