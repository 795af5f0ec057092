package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staffadmin/internal/admin/model"
)

func (r *MongoRepository) ListAdmins(ctx context.Context) ([]*model.AdminUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.AdminUsers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var admins []*model.AdminUser
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoRepository) GetAdmin(ctx context.Context, id string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.AdminUsers.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoRepository) GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.AdminUsers.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoRepository) CreateAdmin(ctx context.Context, admin *model.AdminUser) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.AdminUsers.InsertOne(ctx, admin)
	if isDuplicateKeyErr(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) ListPendingAdmins(ctx context.Context) ([]*model.AdminUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.AdminUsers.Find(ctx, bson.M{"status": model.StatusPendingVerification}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var admins []*model.AdminUser
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoRepository) SetAdminStatus(ctx context.Context, id, status, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
			"updated_by": updatedBy,
		},
	}
	res, err := r.AdminUsers.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) SetAdminRole(ctx context.Context, id, role, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"role":          role,
			"assigned_role": role,
			"updated_at":    time.Now(),
			"updated_by":    updatedBy,
		},
	}
	res, err := r.AdminUsers.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteAdmin(ctx context.Context, id string) error {
	// Rejection is a hard delete. The audit log is the only remaining trace.
	res, err := r.AdminUsers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
