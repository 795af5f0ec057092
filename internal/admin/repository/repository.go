package repository

import (
	"context"
	"errors"

	"staffadmin/internal/admin/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type StaffRepository interface {
	// Groups
	ListGroups(ctx context.Context) ([]*model.Group, error)
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	CreateGroup(ctx context.Context, group *model.Group) error
	UpdateGroupPermissions(ctx context.Context, id string, permissions []model.Permission, updatedBy string) error
	DeleteGroup(ctx context.Context, id string) error
	AddGroupMember(ctx context.Context, groupID string, member model.GroupMember) error
	RemoveGroupMember(ctx context.Context, groupID, userID string) error
	// Admin users
	ListAdmins(ctx context.Context) ([]*model.AdminUser, error)
	GetAdmin(ctx context.Context, id string) (*model.AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	CreateAdmin(ctx context.Context, admin *model.AdminUser) error
	ListPendingAdmins(ctx context.Context) ([]*model.AdminUser, error)
	SetAdminStatus(ctx context.Context, id, status, updatedBy string) error
	SetAdminRole(ctx context.Context, id, role, updatedBy string) error
	DeleteAdmin(ctx context.Context, id string) error
	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
}

type AuditRepository interface {
	InsertAuditEntry(ctx context.Context, entry *model.AuditEntry) error
	FindAuditEntries(ctx context.Context, filter model.AuditFilter) ([]*model.AuditEntry, error)
	EnsureAuditIndexes(ctx context.Context) error
}
