package hierarchy

import "staffadmin/internal/admin/model"

// IsMember reports whether the user appears in the group's member list.
// Member user ids are matched through the canonical UserRef normalization,
// so records carrying a nested user document, a plain id string or only a
// record _id all resolve the same way.
func IsMember(userID string, group *model.Group) bool {
	if userID == "" || group == nil {
		return false
	}
	for _, m := range group.Members {
		if model.MemberUserID(m) == userID {
			return true
		}
	}
	return false
}

// MembershipOf returns the user's membership record in the group, if any.
func MembershipOf(userID string, group *model.Group) (model.GroupMember, bool) {
	if userID == "" || group == nil {
		return model.GroupMember{}, false
	}
	for _, m := range group.Members {
		if model.MemberUserID(m) == userID {
			return m, true
		}
	}
	return model.GroupMember{}, false
}

// MembershipsOf collects every group in the built tree, roots and sub-groups
// alike, where the user holds a membership.
func MembershipsOf(userID string, roots []*model.Group) []*model.Group {
	var out []*model.Group
	for _, g := range Flatten(roots) {
		if IsMember(userID, g) {
			out = append(out, g)
		}
	}
	return out
}

// RoleCategoryOf returns the user's role category within the group, or ""
// when the user is not a member.
func RoleCategoryOf(userID string, group *model.Group) string {
	m, ok := MembershipOf(userID, group)
	if !ok {
		return ""
	}
	return m.RoleCategory
}

// IsTeamLead reports whether the user is a team_lead member of the group.
func IsTeamLead(userID string, group *model.Group) bool {
	return RoleCategoryOf(userID, group) == model.RoleCategoryTeamLead
}

// EffectivePermissions resolves the permission set actually granted to the
// user in the group. The override is all-or-nothing: a non-empty member
// override replaces the group's set entirely, never merges with it. Users
// who are not members get nothing.
func EffectivePermissions(userID string, group *model.Group) []model.Permission {
	m, ok := MembershipOf(userID, group)
	if !ok {
		return nil
	}
	if len(m.MemberPermissions) > 0 {
		return m.MemberPermissions
	}
	return group.Permissions
}

// HasLeadAssignment reports whether the user already holds a team_lead
// membership anywhere in the tree. A user leads at most one department group.
func HasLeadAssignment(userID string, roots []*model.Group) bool {
	for _, g := range Flatten(roots) {
		if IsTeamLead(userID, g) {
			return true
		}
	}
	return false
}
