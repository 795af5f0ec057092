package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffadmin/internal/admin/hierarchy"
	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/policy"
	"staffadmin/internal/admin/repository"
	"staffadmin/internal/admin/util"
)

func (s *Service) AddGroupMember(ctx context.Context, caller model.Principal, groupID string, req model.AddMemberReq) error {
	if caller.UserID == "" {
		return ErrUnauthorized
	}
	if groupID == "" {
		return ErrBadRequest
	}

	group, err := s.Repo.GetGroup(ctx, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	// team_lead assignment is super_admin only; team_member may also be added
	// by an admin who leads this group.
	if !s.Policy.CanMutateMembership(caller, group, req.RoleCategory) {
		missing := policy.CapGroupAddMember
		if req.RoleCategory == model.RoleCategoryTeamLead {
			missing = policy.CapGroupAddLead
		}
		return &CapabilityError{Capability: missing}
	}

	if req.RoleCategory == model.RoleCategoryTeamLead {
		if err := s.checkLeadNotAssigned(ctx, req.UserID); err != nil {
			return err
		}
	}

	member := model.GroupMember{
		ID:                uuid.NewString(),
		UserID:            model.UserRef(req.UserID),
		RoleCategory:      req.RoleCategory,
		MemberPermissions: req.MemberPermissions,
		AddedBy:           caller.UserID,
		AddedAt:           time.Now(),
	}

	if err := s.Repo.AddGroupMember(ctx, groupID, member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	util.GetLogger().Info("group member added",
		"group", groupID,
		"target", req.UserID,
		"roleCategory", req.RoleCategory,
		"caller", caller.UserID,
	)
	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditMemberAdded,
		ActorID:  caller.UserID,
		TargetID: req.UserID,
		GroupID:  groupID,
		Detail:   req.RoleCategory,
	})
	return nil
}

func (s *Service) RemoveGroupMember(ctx context.Context, caller model.Principal, groupID, userID string) error {
	userID = strings.TrimSpace(userID)
	if caller.UserID == "" {
		return ErrUnauthorized
	}
	if groupID == "" || userID == "" {
		return ErrBadRequest
	}

	group, err := s.Repo.GetGroup(ctx, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	membership, ok := hierarchy.MembershipOf(userID, group)
	if !ok {
		return ErrNotFound
	}

	// Removing follows the same delegation rule as adding: pulling a lead out
	// of a group is reserved to super_admin.
	if !s.Policy.CanMutateMembership(caller, group, membership.RoleCategory) {
		missing := policy.CapGroupRemoveMember
		if membership.RoleCategory == model.RoleCategoryTeamLead {
			missing = policy.CapGroupAddLead
		}
		return &CapabilityError{Capability: missing}
	}

	if err := s.Repo.RemoveGroupMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	util.GetLogger().Info("group member removed", "group", groupID, "target", userID, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:   model.AuditMemberRemoved,
		ActorID:  caller.UserID,
		TargetID: userID,
		GroupID:  groupID,
	})
	return nil
}
