package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staffadmin/internal/admin/model"
)

func (r *MongoRepository) ListGroups(ctx context.Context) ([]*model.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.Groups.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []*model.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}

	// member_count is derived; keep it honest regardless of what is stored
	for _, g := range groups {
		g.MemberCount = len(g.Members)
	}
	return groups, nil
}

func (r *MongoRepository) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	err := r.Groups.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	group.MemberCount = len(group.Members)
	return &group, nil
}

func (r *MongoRepository) CreateGroup(ctx context.Context, group *model.Group) error {
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now
	if group.Members == nil {
		group.Members = []model.GroupMember{}
	}
	if group.Permissions == nil {
		group.Permissions = []model.Permission{}
	}
	group.MemberCount = len(group.Members)

	_, err := r.Groups.InsertOne(ctx, group)
	if isDuplicateKeyErr(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) UpdateGroupPermissions(ctx context.Context, id string, permissions []model.Permission, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"permissions": permissions,
			"updated_at":  time.Now(),
			"updated_by":  updatedBy,
		},
	}
	res, err := r.Groups.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteGroup(ctx context.Context, id string) error {
	res, err := r.Groups.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) AddGroupMember(ctx context.Context, groupID string, member model.GroupMember) error {
	// Replace any previous membership of the same user, then push and
	// recompute the derived count in one pipeline update.
	userID := model.MemberUserID(member)

	pull := bson.M{
		"$pull": bson.M{"members": bson.M{"user_id": userID}},
	}
	if _, err := r.Groups.UpdateOne(ctx, bson.M{"_id": groupID}, pull); err != nil {
		return err
	}

	push := bson.M{
		"$push": bson.M{"members": member},
		"$set": bson.M{
			"updated_at": time.Now(),
			"updated_by": member.AddedBy,
		},
	}
	res, err := r.Groups.UpdateOne(ctx, bson.M{"_id": groupID}, push)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return r.recountMembers(ctx, groupID)
}

func (r *MongoRepository) RemoveGroupMember(ctx context.Context, groupID, userID string) error {
	update := bson.M{
		"$pull": bson.M{"members": bson.M{"user_id": userID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.Groups.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return r.recountMembers(ctx, groupID)
}

func (r *MongoRepository) recountMembers(ctx context.Context, groupID string) error {
	pipeline := bson.A{
		bson.M{"$set": bson.M{"member_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$members", bson.A{}}}}}},
	}
	_, err := r.Groups.UpdateOne(ctx, bson.M{"_id": groupID}, pipeline)
	return err
}
