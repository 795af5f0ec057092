package service

import (
	"context"
	"errors"
	"time"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/policy"
	"staffadmin/internal/admin/repository"
	"staffadmin/internal/admin/util"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
)

// CapabilityError is a forbidden error that names the capability the caller
// is missing, so rejection messages can say exactly what was required.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return "missing capability: " + e.Capability
}

func (e *CapabilityError) Is(target error) bool {
	return target == ErrForbidden
}

type StaffService interface {
	ListGroups(ctx context.Context, caller model.Principal) ([]*model.Group, error)
	CreateGroup(ctx context.Context, caller model.Principal, req model.CreateGroupReq) (*model.Group, error)
	UpdateGroupPermissions(ctx context.Context, caller model.Principal, groupID string, req model.UpdateGroupPermissionsReq) error
	DeleteGroup(ctx context.Context, caller model.Principal, groupID string) error
	AddGroupMember(ctx context.Context, caller model.Principal, groupID string, req model.AddMemberReq) error
	RemoveGroupMember(ctx context.Context, caller model.Principal, groupID, userID string) error

	ListAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error)
	CreateAdmin(ctx context.Context, caller model.Principal, req model.CreateAdminReq) (*model.AdminUser, error)
	ListPendingAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error)
	VerifyAdmin(ctx context.Context, caller model.Principal, req model.VerifyAdminReq) error
	PromoteUser(ctx context.Context, caller model.Principal, req model.PromoteUserReq) error
	SetAdminStatus(ctx context.Context, caller model.Principal, adminID string, req model.SetAdminStatusReq) error

	Login(ctx context.Context, req model.LoginReq) (*LoginResult, error)
	ListAuditEntries(ctx context.Context, caller model.Principal, filter model.AuditFilter) ([]*model.AuditEntry, error)
}

// LoginResult carries the signed token and the authenticated account.
type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Admin     *model.AdminUser `json:"admin"`
}

type Service struct {
	Repo   repository.StaffRepository
	Audit  repository.AuditRepository
	Policy *policy.Engine
	Tokens *auth.TokenManager

	BcryptCost int
}

func NewService(repo repository.StaffRepository, audit repository.AuditRepository, tokens *auth.TokenManager, bcryptCost int) *Service {
	return &Service{
		Repo:       repo,
		Audit:      audit,
		Policy:     policy.NewEngine(),
		Tokens:     tokens,
		BcryptCost: bcryptCost,
	}
}

var _ StaffService = (*Service)(nil)

// requireCapability rejects callers whose system role lacks the capability.
func (s *Service) requireCapability(caller model.Principal, capability string) error {
	if caller.UserID == "" {
		return ErrUnauthorized
	}
	if !s.Policy.HasCapability(caller, capability) {
		return &CapabilityError{Capability: capability}
	}
	return nil
}

// recordAudit appends an audit entry. Audit failures never fail the
// mutation they describe; they are logged and dropped.
func (s *Service) recordAudit(ctx context.Context, entry model.AuditEntry) {
	if err := s.Audit.InsertAuditEntry(ctx, &entry); err != nil {
		util.GetLogger().Warn("failed to write audit entry",
			"action", entry.Action,
			"actor", entry.ActorID,
			"error", err,
		)
	}
}
