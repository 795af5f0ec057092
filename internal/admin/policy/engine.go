// Package policy is the mutation policy for staff administration: which
// system role may create or delete groups, attach members, approve pending
// accounts and so on. The rules are evaluated again by the service layer on
// every mutation; handlers only translate failures into responses.
package policy

import (
	"sort"

	"staffadmin/internal/admin/hierarchy"
	"staffadmin/internal/admin/model"
)

// Capability keys checked before mutations
const (
	CapGroupCreate       = "group.create"
	CapGroupDelete       = "group.delete"
	CapGroupUpdatePerms  = "group.update_permissions"
	CapGroupAddLead      = "group.add_team_lead"
	CapGroupAddMember    = "group.add_team_member"
	CapGroupRemoveMember = "group.remove_member"
	CapAdminCreate       = "admin.create"
	CapAdminVerify       = "admin.verify"
	CapAdminPromote      = "admin.promote"
	CapAdminSetStatus    = "admin.set_status"
	CapAuditRead         = "audit.read"
)

// capabilityRoles maps each capability to the system roles holding it
// unconditionally. Membership-based delegation (an admin who leads the target
// group may add team members) is layered on top in CanMutateMembership.
var capabilityRoles = map[string][]string{
	CapGroupCreate:       {model.RoleSuperAdmin, model.RoleAdmin},
	CapGroupDelete:       {model.RoleSuperAdmin, model.RoleAdmin},
	CapGroupUpdatePerms:  {model.RoleSuperAdmin, model.RoleAdmin},
	CapGroupAddLead:      {model.RoleSuperAdmin},
	CapGroupAddMember:    {model.RoleSuperAdmin},
	CapGroupRemoveMember: {model.RoleSuperAdmin},
	CapAdminCreate:       {model.RoleSuperAdmin, model.RoleAdmin},
	CapAdminVerify:       {model.RoleSuperAdmin},
	CapAdminPromote:      {model.RoleSuperAdmin},
	CapAdminSetStatus:    {model.RoleSuperAdmin},
	CapAuditRead:         {model.RoleSuperAdmin, model.RoleAdmin},
}

// Engine answers mutation policy questions for a caller.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// HasCapability reports whether the caller's system role holds the capability
// unconditionally.
func (e *Engine) HasCapability(caller model.Principal, capability string) bool {
	for _, role := range capabilityRoles[capability] {
		if caller.Role == role {
			return true
		}
	}
	return false
}

// RolesWithCapability returns the roles holding a capability, sorted.
func (e *Engine) RolesWithCapability(capability string) []string {
	roles := append([]string(nil), capabilityRoles[capability]...)
	sort.Strings(roles)
	return roles
}

// CanMutateMembership decides whether the caller may add or remove a member
// with the given role category in the target group.
//
// team_lead assignments are reserved to super_admin. team_member assignments
// are open to super_admin, and to an admin who is themselves a team_lead
// member of that very group: delegation follows membership, not the system
// role alone.
func (e *Engine) CanMutateMembership(caller model.Principal, group *model.Group, roleCategory string) bool {
	if roleCategory == model.RoleCategoryTeamLead {
		return e.HasCapability(caller, CapGroupAddLead)
	}

	if e.HasCapability(caller, CapGroupAddMember) {
		return true
	}
	if caller.Role == model.RoleAdmin && hierarchy.IsTeamLead(caller.UserID, group) {
		return true
	}
	return false
}
