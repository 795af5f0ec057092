package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"staffadmin/internal/admin/hierarchy"
	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/policy"
	"staffadmin/internal/admin/repository"
	"staffadmin/internal/admin/util"
)

// ListGroups returns the two-level group tree: roots carrying their
// sub-groups, orphans dropped.
func (s *Service) ListGroups(ctx context.Context, caller model.Principal) ([]*model.Group, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthorized
	}
	flat, err := s.Repo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	return hierarchy.Build(flat), nil
}

func (s *Service) CreateGroup(ctx context.Context, caller model.Principal, req model.CreateGroupReq) (*model.Group, error) {
	if err := s.requireCapability(caller, policy.CapGroupCreate); err != nil {
		return nil, err
	}

	permissions := req.Permissions

	// Sub-group: parent must exist and must itself be a root. The hierarchy
	// never nests deeper than two levels, so a sub-group of a sub-group is
	// rejected outright rather than silently accepted.
	if req.ParentGroupID != "" {
		parent, err := s.Repo.GetGroup(ctx, req.ParentGroupID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &model.ValidationError{Code: "bad_request", Message: "parent group does not exist"}
		}
		if err != nil {
			return nil, err
		}
		if parent.ParentGroupID != "" {
			return nil, &model.ValidationError{Code: "bad_request", Message: "sub-groups cannot be nested under another sub-group"}
		}
		// Starting point for a new sub-group: a copy of the parent's set.
		// Later edits to the parent do not propagate.
		if len(permissions) == 0 {
			permissions = append([]model.Permission(nil), parent.Permissions...)
		}
	}

	group := &model.Group{
		ID:            uuid.NewString(),
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		Description:   req.Description,
		Department:    req.Department,
		Permissions:   permissions,
		ParentGroupID: req.ParentGroupID,
		Members:       []model.GroupMember{},
		IsActive:      true,
		CreatedBy:     caller.UserID,
		UpdatedBy:     caller.UserID,
	}

	if req.TeamLeadID != "" {
		if !s.Policy.HasCapability(caller, policy.CapGroupAddLead) {
			return nil, &CapabilityError{Capability: policy.CapGroupAddLead}
		}
		if err := s.checkLeadNotAssigned(ctx, req.TeamLeadID); err != nil {
			return nil, err
		}
		group.Members = append(group.Members, model.GroupMember{
			ID:           uuid.NewString(),
			UserID:       model.UserRef(req.TeamLeadID),
			RoleCategory: model.RoleCategoryTeamLead,
			AddedBy:      caller.UserID,
			AddedAt:      time.Now(),
		})
	}
	if req.GroupAdminID != "" && req.GroupAdminID != req.TeamLeadID {
		group.Members = append(group.Members, model.GroupMember{
			ID:           uuid.NewString(),
			UserID:       model.UserRef(req.GroupAdminID),
			RoleCategory: model.RoleCategoryTeamMember,
			AddedBy:      caller.UserID,
			AddedAt:      time.Now(),
		})
	}

	if err := s.Repo.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	util.GetLogger().Info("group created", "group", group.ID, "name", group.Name, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:  model.AuditGroupCreated,
		ActorID: caller.UserID,
		GroupID: group.ID,
		Detail:  group.DisplayName,
	})

	return group, nil
}

func (s *Service) UpdateGroupPermissions(ctx context.Context, caller model.Principal, groupID string, req model.UpdateGroupPermissionsReq) error {
	if err := s.requireCapability(caller, policy.CapGroupUpdatePerms); err != nil {
		return err
	}
	if groupID == "" {
		return ErrBadRequest
	}

	err := s.Repo.UpdateGroupPermissions(ctx, groupID, req.Permissions, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.recordAudit(ctx, model.AuditEntry{
		Action:  model.AuditGroupUpdated,
		ActorID: caller.UserID,
		GroupID: groupID,
	})
	return nil
}

// DeleteGroup removes the group and all its memberships. Sub-groups of a
// deleted parent are not cascaded: they become orphans and the hierarchy
// builder stops showing them.
func (s *Service) DeleteGroup(ctx context.Context, caller model.Principal, groupID string) error {
	if err := s.requireCapability(caller, policy.CapGroupDelete); err != nil {
		return err
	}
	if groupID == "" {
		return ErrBadRequest
	}

	err := s.Repo.DeleteGroup(ctx, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	util.GetLogger().Info("group deleted", "group", groupID, "caller", caller.UserID)
	s.recordAudit(ctx, model.AuditEntry{
		Action:  model.AuditGroupDeleted,
		ActorID: caller.UserID,
		GroupID: groupID,
	})
	return nil
}

// checkLeadNotAssigned enforces the single-lead rule: a user holds at most
// one team_lead membership across the whole hierarchy.
func (s *Service) checkLeadNotAssigned(ctx context.Context, userID string) error {
	flat, err := s.Repo.ListGroups(ctx)
	if err != nil {
		return err
	}
	if hierarchy.HasLeadAssignment(userID, hierarchy.Build(flat)) {
		return ErrConflict
	}
	return nil
}
