package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"staffadmin/internal/admin/model"
)

// MockStaffRepository is a shared mock implementation of
// repository.StaffRepository for testing.
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) ListGroups(ctx context.Context) ([]*model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

func (m *MockStaffRepository) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockStaffRepository) CreateGroup(ctx context.Context, group *model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateGroupPermissions(ctx context.Context, id string, permissions []model.Permission, updatedBy string) error {
	args := m.Called(ctx, id, permissions, updatedBy)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteGroup(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) AddGroupMember(ctx context.Context, groupID string, member model.GroupMember) error {
	args := m.Called(ctx, groupID, member)
	return args.Error(0)
}

func (m *MockStaffRepository) RemoveGroupMember(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockStaffRepository) ListAdmins(ctx context.Context) ([]*model.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminUser), args.Error(1)
}

func (m *MockStaffRepository) GetAdmin(ctx context.Context, id string) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockStaffRepository) GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockStaffRepository) CreateAdmin(ctx context.Context, admin *model.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockStaffRepository) ListPendingAdmins(ctx context.Context) ([]*model.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminUser), args.Error(1)
}

func (m *MockStaffRepository) SetAdminStatus(ctx context.Context, id, status, updatedBy string) error {
	args := m.Called(ctx, id, status, updatedBy)
	return args.Error(0)
}

func (m *MockStaffRepository) SetAdminRole(ctx context.Context, id, role, updatedBy string) error {
	args := m.Called(ctx, id, role, updatedBy)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteAdmin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) InsertAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindAuditEntries(ctx context.Context, filter model.AuditFilter) ([]*model.AuditEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) EnsureAuditIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
