package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/policy"
	"staffadmin/internal/admin/repository"
	"staffadmin/internal/admin/util"
)

func (s *Service) ListAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthorized
	}
	return s.Repo.ListAdmins(ctx)
}

// CreateAdmin registers a staff account. Every new account starts in
// pending_verification and cannot authenticate until a super_admin approves
// it.
func (s *Service) CreateAdmin(ctx context.Context, caller model.Principal, req model.CreateAdminReq) (*model.AdminUser, error) {
	if err := s.requireCapability(caller, policy.CapAdminCreate); err != nil {
		return nil, err
	}

	// team_lead accounts are bound to their single department group up front.
	// Every requested membership must pass the mutation policy before the
	// account row is written, so a rejection never leaves a pending account
	// behind.
	roleCategory := model.RoleCategoryTeamMember
	if req.Role == model.RoleTeamLead {
		roleCategory = model.RoleCategoryTeamLead
	}
	for _, gid := range req.GroupIDs {
		group, err := s.Repo.GetGroup(ctx, gid)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &model.ValidationError{Code: "bad_request", Message: "group '" + gid + "' does not exist"}
		}
		if err != nil {
			return nil, err
		}
		if !s.Policy.CanMutateMembership(caller, group, roleCategory) {
			missing := policy.CapGroupAddMember
			if roleCategory == model.RoleCategoryTeamLead {
				missing = policy.CapGroupAddLead
			}
			return nil, &CapabilityError{Capability: missing}
		}
	}

	hash, err := auth.HashPassword(req.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &model.AdminUser{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Role:         req.Role,
		AssignedRole: req.Role,
		Status:       model.StatusPendingVerification,
		PasswordHash: hash,
		GroupIDs:     req.GroupIDs,
		CreatedBy:    caller.UserID,
		UpdatedBy:    caller.UserID,
	}

	if err := s.Repo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// Memberships ride along with account creation. The policy was cleared
	// before the insert, so a failure here is a backend error; it surfaces
	// without rolling the account back.
	for _, gid := range req.GroupIDs {
		memberReq := model.AddMemberReq{UserID: admin.ID, RoleCategory: roleCategory}
		if err := memberReq.Validate(); err != nil {
			return nil, err
		}
		if err := s.AddGroupMember(ctx, caller, gid, memberReq); err != nil {
			return nil, err
		}
	}

	util.GetLogger().Info("admin account created", "admin", admin.ID, "role", admin.Role, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditAdminCreated,
		ActorID:  caller.UserID,
		TargetID: admin.ID,
		Detail:   admin.Role,
	})

	return admin, nil
}

func (s *Service) ListPendingAdmins(ctx context.Context, caller model.Principal) ([]*model.AdminUser, error) {
	if err := s.requireCapability(caller, policy.CapAdminVerify); err != nil {
		return nil, err
	}
	return s.Repo.ListPendingAdmins(ctx)
}

// VerifyAdmin resolves a pending account: approval activates it, rejection
// deletes it outright. Rejection is terminal; the user must re-register.
// Either way a single repository write happens, so a failed call leaves the
// account untouched in pending_verification.
func (s *Service) VerifyAdmin(ctx context.Context, caller model.Principal, req model.VerifyAdminReq) error {
	if err := s.requireCapability(caller, policy.CapAdminVerify); err != nil {
		return err
	}

	target, err := s.Repo.GetAdmin(ctx, req.AdminID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if target.Status != model.StatusPendingVerification {
		return ErrConflict
	}

	if req.Approved != nil && *req.Approved {
		if err := s.Repo.SetAdminStatus(ctx, target.ID, model.StatusActive, caller.UserID); err != nil {
			return err
		}
		util.GetLogger().Info("admin approved", "admin", target.ID, "caller", caller.UserID)
		s.recordAudit(ctx, model.AuditEntry{
			Action:   model.AuditAdminApproved,
			ActorID:  caller.UserID,
			TargetID: target.ID,
			Detail:   target.Email,
		})
		return nil
	}

	if err := s.Repo.DeleteAdmin(ctx, target.ID); err != nil {
		return err
	}
	util.GetLogger().Info("admin rejected and deleted", "admin", target.ID, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditAdminRejected,
		ActorID:  caller.UserID,
		TargetID: target.ID,
		Detail:   target.Email,
	})
	return nil
}

func (s *Service) PromoteUser(ctx context.Context, caller model.Principal, req model.PromoteUserReq) error {
	if err := s.requireCapability(caller, policy.CapAdminPromote); err != nil {
		return err
	}

	if _, err := s.Repo.GetAdmin(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.SetAdminRole(ctx, req.UserID, req.Role, caller.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	util.GetLogger().Info("user promoted", "target", req.UserID, "role", req.Role, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditAdminPromoted,
		ActorID:  caller.UserID,
		TargetID: req.UserID,
		Detail:   req.Role,
	})
	return nil
}

// SetAdminStatus handles the deactivate/reactivate pair. Pending accounts are
// owned by the approval workflow and cannot be toggled here.
func (s *Service) SetAdminStatus(ctx context.Context, caller model.Principal, adminID string, req model.SetAdminStatusReq) error {
	if err := s.requireCapability(caller, policy.CapAdminSetStatus); err != nil {
		return err
	}
	if adminID == "" {
		return ErrBadRequest
	}

	target, err := s.Repo.GetAdmin(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if target.Status == model.StatusPendingVerification {
		return ErrConflict
	}

	if err := s.Repo.SetAdminStatus(ctx, adminID, req.Status, caller.UserID); err != nil {
		return err
	}

	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditAdminStatusChange,
		ActorID:  caller.UserID,
		TargetID: adminID,
		Detail:   req.Status,
	})
	return nil
}

// Login authenticates a staff account. pending_verification and deactivated
// accounts fail with an explicit inactive error rather than bad credentials.
func (s *Service) Login(ctx context.Context, req model.LoginReq) (*LoginResult, error) {
	admin, err := s.Repo.GetAdminByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if admin.Status != model.StatusActive {
		return nil, ErrAccountInactive
	}

	token, expiresAt, err := s.Tokens.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *Service) ListAuditEntries(ctx context.Context, caller model.Principal, filter model.AuditFilter) ([]*model.AuditEntry, error) {
	if err := s.requireCapability(caller, policy.CapAuditRead); err != nil {
		return nil, err
	}
	return s.Audit.FindAuditEntries(ctx, filter)
}
