package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/service"
)

type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) ListGroups(ctx context.Context, caller model.Principal) ([]*model.Group, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

func (m *MockStaffService) CreateGroup(ctx context.Context, caller model.Principal, req model.CreateGroupReq) (*model.Group, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockStaffService) UpdateGroupPermissions(ctx context.Context, caller model.Principal, groupID string, req model.UpdateGroupPermissionsReq) error {
	return m.Called(ctx, caller, groupID, req).Error(0)
}

func (m *MockStaffService) DeleteGroup(ctx context.Context, caller model.Principal, groupID string) error {
	return m.Called(ctx, caller, groupID).Error(0)
}

func (m *MockStaffService) AddGroupMember(ctx context.Context, caller model.Principal, groupID string, req model.AddMemberReq) error {
	return m.Called(ctx, caller, groupID, req).Error(0)
}

func (m *MockStaffService) RemoveGroupMember(ctx context.Context, caller model.Principal, groupID, userID string) error {
	return m.Called(ctx, caller, groupID, userID).Error(0)
}

func (m *MockStaffService) ListAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminUser), args.Error(1)
}

func (m *MockStaffService) CreateAdmin(ctx context.Context, caller model.Principal, req model.CreateAdminReq) (*model.AdminUser, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockStaffService) ListPendingAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminUser), args.Error(1)
}

func (m *MockStaffService) VerifyAdmin(ctx context.Context, caller model.Principal, req model.VerifyAdminReq) error {
	return m.Called(ctx, caller, req).Error(0)
}

func (m *MockStaffService) PromoteUser(ctx context.Context, caller model.Principal, req model.PromoteUserReq) error {
	return m.Called(ctx, caller, req).Error(0)
}

func (m *MockStaffService) SetAdminStatus(ctx context.Context, caller model.Principal, adminID string, req model.SetAdminStatusReq) error {
	return m.Called(ctx, caller, adminID, req).Error(0)
}

func (m *MockStaffService) Login(ctx context.Context, req model.LoginReq) (*service.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockStaffService) ListAuditEntries(ctx context.Context, caller model.Principal, filter model.AuditFilter) ([]*model.AuditEntry, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditEntry), args.Error(1)
}

var _ service.StaffService = (*MockStaffService)(nil)
