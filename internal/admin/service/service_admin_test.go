package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/repository"
)

func newTestService(repo *MockStaffRepository, audit *MockAuditRepository) *Service {
	return NewService(repo, audit, auth.NewTokenManager("test-secret", 60), 4)
}

func boolPtr(b bool) *bool { return &b }

var (
	superAdmin = model.Principal{UserID: "sa_1", Role: model.RoleSuperAdmin}
	plainAdmin = model.Principal{UserID: "ad_1", Role: model.RoleAdmin}
	leadMember = model.Principal{UserID: "tm_1", Role: model.RoleTeamMember}
)

func TestVerifyAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("approve transitions pending account to active", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("GetAdmin", mock.Anything, "a_1").Return(&model.AdminUser{
			ID: "a_1", Email: "new@corp.io", Status: model.StatusPendingVerification,
		}, nil)
		repo.On("SetAdminStatus", mock.Anything, "a_1", model.StatusActive, "sa_1").Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
			return e.Action == model.AuditAdminApproved && e.TargetID == "a_1"
		})).Return(nil)

		err := svc.VerifyAdmin(ctx, superAdmin, model.VerifyAdminReq{AdminID: "a_1", Approved: boolPtr(true)})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		audit.AssertExpectations(t)
	})

	t.Run("reject deletes the account outright", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("GetAdmin", mock.Anything, "a_1").Return(&model.AdminUser{
			ID: "a_1", Status: model.StatusPendingVerification,
		}, nil)
		repo.On("DeleteAdmin", mock.Anything, "a_1").Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
			return e.Action == model.AuditAdminRejected
		})).Return(nil)

		err := svc.VerifyAdmin(ctx, superAdmin, model.VerifyAdminReq{AdminID: "a_1", Approved: boolPtr(false)})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		// no status update ever happens on rejection
		repo.AssertNotCalled(t, "SetAdminStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-super_admin caller is forbidden", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		err := svc.VerifyAdmin(ctx, plainAdmin, model.VerifyAdminReq{AdminID: "a_1", Approved: boolPtr(true)})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "GetAdmin", mock.Anything, mock.Anything)
	})

	t.Run("already active account cannot be re-verified", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdmin", mock.Anything, "a_1").Return(&model.AdminUser{
			ID: "a_1", Status: model.StatusActive,
		}, nil)

		err := svc.VerifyAdmin(ctx, superAdmin, model.VerifyAdminReq{AdminID: "a_1", Approved: boolPtr(false)})
		assert.ErrorIs(t, err, ErrConflict)
		repo.AssertNotCalled(t, "DeleteAdmin", mock.Anything, mock.Anything)
	})

	t.Run("unknown account returns not found", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdmin", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		err := svc.VerifyAdmin(ctx, superAdmin, model.VerifyAdminReq{AdminID: "ghost", Approved: boolPtr(true)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("backend failure leaves account pending", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdmin", mock.Anything, "a_1").Return(&model.AdminUser{
			ID: "a_1", Status: model.StatusPendingVerification,
		}, nil)
		repo.On("SetAdminStatus", mock.Anything, "a_1", model.StatusActive, "sa_1").Return(assert.AnError)

		err := svc.VerifyAdmin(ctx, superAdmin, model.VerifyAdminReq{AdminID: "a_1", Approved: boolPtr(true)})
		assert.Error(t, err)
		// error surfaced, nothing else written: caller may retry
		repo.AssertNotCalled(t, "DeleteAdmin", mock.Anything, mock.Anything)
	})
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("new account starts pending with hashed password", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("CreateAdmin", mock.Anything, mock.MatchedBy(func(a *model.AdminUser) bool {
			return a.Status == model.StatusPendingVerification &&
				a.PasswordHash != "" && a.PasswordHash != "s3cret-pass" &&
				a.Email == "new@corp.io"
		})).Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.Anything).Return(nil)

		admin, err := svc.CreateAdmin(ctx, superAdmin, model.CreateAdminReq{
			FirstName: "New", LastName: "Hire", Email: "new@corp.io",
			Password: "s3cret-pass", Role: model.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPendingVerification, admin.Status)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("CreateAdmin", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.CreateAdmin(ctx, superAdmin, model.CreateAdminReq{
			FirstName: "New", LastName: "Hire", Email: "dup@corp.io",
			Password: "s3cret-pass", Role: model.RoleAdmin,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("team member caller is forbidden", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		_, err := svc.CreateAdmin(ctx, leadMember, model.CreateAdminReq{
			FirstName: "New", LastName: "Hire", Email: "new@corp.io",
			Password: "s3cret-pass", Role: model.RoleAdmin,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin creating a team lead account is rejected before insert", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetGroup", mock.Anything, "g_1").Return(&model.Group{ID: "g_1"}, nil)

		_, err := svc.CreateAdmin(ctx, plainAdmin, model.CreateAdminReq{
			FirstName: "New", LastName: "Lead", Email: "lead@corp.io",
			Password: "s3cret-pass", Role: model.RoleTeamLead, GroupIDs: []string{"g_1"},
		})
		assert.ErrorIs(t, err, ErrForbidden)
		// the rejection must not leave a pending account behind
		repo.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
	})

	t.Run("super_admin creates a team lead account with its department group", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("GetGroup", mock.Anything, "g_1").Return(&model.Group{ID: "g_1"}, nil)
		repo.On("CreateAdmin", mock.Anything, mock.Anything).Return(nil)
		repo.On("ListGroups", mock.Anything).Return([]*model.Group{{ID: "g_1"}}, nil)
		repo.On("AddGroupMember", mock.Anything, "g_1", mock.MatchedBy(func(m model.GroupMember) bool {
			return m.RoleCategory == model.RoleCategoryTeamLead
		})).Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.Anything).Return(nil)

		admin, err := svc.CreateAdmin(ctx, superAdmin, model.CreateAdminReq{
			FirstName: "New", LastName: "Lead", Email: "lead@corp.io",
			Password: "s3cret-pass", Role: model.RoleTeamLead, GroupIDs: []string{"g_1"},
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPendingVerification, admin.Status)
		repo.AssertExpectations(t)
	})

	t.Run("unknown target group blocks creation before insert", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetGroup", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		_, err := svc.CreateAdmin(ctx, superAdmin, model.CreateAdminReq{
			FirstName: "New", LastName: "Hire", Email: "new@corp.io",
			Password: "s3cret-pass", Role: model.RoleAdmin, GroupIDs: []string{"ghost"},
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
	})
}

func TestPromoteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("super_admin promotes an existing user", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("GetAdmin", mock.Anything, "u_1").Return(&model.AdminUser{ID: "u_1", Role: model.RoleTeamMember}, nil)
		repo.On("SetAdminRole", mock.Anything, "u_1", model.RoleKYCOfficer, "sa_1").Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.Anything).Return(nil)

		err := svc.PromoteUser(ctx, superAdmin, model.PromoteUserReq{UserID: "u_1", Role: model.RoleKYCOfficer})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("admin caller is forbidden", func(t *testing.T) {
		svc := newTestService(new(MockStaffRepository), new(MockAuditRepository))
		err := svc.PromoteUser(ctx, plainAdmin, model.PromoteUserReq{UserID: "u_1", Role: model.RoleAdmin})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := auth.HashPassword("correct-horse", 4)

	t.Run("active account gets a token", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdminByEmail", mock.Anything, "ada@corp.io").Return(&model.AdminUser{
			ID: "u_1", Email: "ada@corp.io", Role: model.RoleAdmin,
			Status: model.StatusActive, PasswordHash: hash,
		}, nil)

		result, err := svc.Login(ctx, model.LoginReq{Email: "ada@corp.io", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "u_1", result.Admin.ID)
	})

	t.Run("pending account cannot authenticate", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdminByEmail", mock.Anything, "ada@corp.io").Return(&model.AdminUser{
			ID: "u_1", Status: model.StatusPendingVerification, PasswordHash: hash,
		}, nil)

		_, err := svc.Login(ctx, model.LoginReq{Email: "ada@corp.io", Password: "correct-horse"})
		assert.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("wrong password fails before status check", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdminByEmail", mock.Anything, "ada@corp.io").Return(&model.AdminUser{
			ID: "u_1", Status: model.StatusActive, PasswordHash: hash,
		}, nil)

		_, err := svc.Login(ctx, model.LoginReq{Email: "ada@corp.io", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email reports invalid credentials, not not-found", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdminByEmail", mock.Anything, "ghost@corp.io").Return(nil, repository.ErrNotFound)

		_, err := svc.Login(ctx, model.LoginReq{Email: "ghost@corp.io", Password: "whatever"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSetAdminStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate active account", func(t *testing.T) {
		repo := new(MockStaffRepository)
		audit := new(MockAuditRepository)
		svc := newTestService(repo, audit)

		repo.On("GetAdmin", mock.Anything, "u_1").Return(&model.AdminUser{ID: "u_1", Status: model.StatusActive}, nil)
		repo.On("SetAdminStatus", mock.Anything, "u_1", model.StatusDeactivated, "sa_1").Return(nil)
		audit.On("InsertAuditEntry", mock.Anything, mock.Anything).Return(nil)

		err := svc.SetAdminStatus(ctx, superAdmin, "u_1", model.SetAdminStatusReq{Status: model.StatusDeactivated})
		require.NoError(t, err)
	})

	t.Run("pending account is owned by the approval workflow", func(t *testing.T) {
		repo := new(MockStaffRepository)
		svc := newTestService(repo, new(MockAuditRepository))

		repo.On("GetAdmin", mock.Anything, "u_1").Return(&model.AdminUser{ID: "u_1", Status: model.StatusPendingVerification}, nil)

		err := svc.SetAdminStatus(ctx, superAdmin, "u_1", model.SetAdminStatusReq{Status: model.StatusActive})
		assert.ErrorIs(t, err, ErrConflict)
	})
}
