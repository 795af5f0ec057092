package model

import "time"

// Permission grants a set of actions on one protected resource key,
// e.g. {resource: "kyc:approval", actions: [view, approve]}.
type Permission struct {
	Resource string   `json:"resource" bson:"resource"`
	Actions  []string `json:"actions" bson:"actions"`
}

// GroupMember associates a staff user with a group. MemberPermissions is an
// all-or-nothing override: when non-empty it replaces the group's permission
// set entirely, never merges with it.
type GroupMember struct {
	ID                string       `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID            UserRef      `json:"userId" bson:"user_id"`
	RoleCategory      string       `json:"roleCategory" bson:"role_category"`
	MemberPermissions []Permission `json:"memberPermissions,omitempty" bson:"member_permissions,omitempty"`
	AddedBy           string       `json:"addedBy,omitempty" bson:"added_by,omitempty"`
	AddedAt           time.Time    `json:"addedAt" bson:"added_at"`
}

// Group is a named collection of staff members sharing a permission set,
// optionally nested one level under a parent group.
type Group struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	DisplayName   string        `json:"displayName" bson:"display_name"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty"`
	Department    string        `json:"department,omitempty" bson:"department,omitempty"`
	Permissions   []Permission  `json:"permissions" bson:"permissions"`
	ParentGroupID string        `json:"parentGroupId,omitempty" bson:"parent_group_id,omitempty"`
	Members       []GroupMember `json:"members" bson:"members"`
	MemberCount   int           `json:"memberCount" bson:"member_count"`
	IsActive      bool          `json:"isActive" bson:"is_active"`

	// SubGroups is derived by the hierarchy builder, never persisted.
	SubGroups []*Group `json:"subGroups,omitempty" bson:"-"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
	CreatedBy string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

// AdminUser is a staff account. Accounts start in pending_verification and
// cannot authenticate until a super_admin approves them.
type AdminUser struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	FirstName    string   `json:"firstName" bson:"first_name"`
	LastName     string   `json:"lastName" bson:"last_name"`
	Email        string   `json:"email" bson:"email"`
	Phone        string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Position     string   `json:"position,omitempty" bson:"position,omitempty"`
	Role         string   `json:"role" bson:"role"`
	Status       string   `json:"status" bson:"status"`
	AssignedRole string   `json:"assignedRole,omitempty" bson:"assigned_role,omitempty"`
	PasswordHash string   `json:"-" bson:"password_hash"`
	GroupIDs     []string `json:"groupIds,omitempty" bson:"group_ids,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
	CreatedBy string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   string
}

// AuditEntry records one staff-administration mutation.
type AuditEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Action    string    `json:"action" bson:"action"`
	ActorID   string    `json:"actorId" bson:"actor_id"`
	TargetID  string    `json:"targetId,omitempty" bson:"target_id,omitempty"`
	GroupID   string    `json:"groupId,omitempty" bson:"group_id,omitempty"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// AuditFilter narrows audit log queries.
type AuditFilter struct {
	ActorID  string
	TargetID string
	GroupID  string
	Action   string
	Limit    int64
}

// ErrorResponse for consistent error handling. Message mirrors the
// human-readable reason clients surface verbatim.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse wraps every 2xx body in the {success, data} envelope.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}
