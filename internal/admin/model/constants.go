package model

// System-wide staff roles
const (
	RoleSuperAdmin      = "super_admin"
	RoleAdmin           = "admin"
	RoleFinanceManager  = "finance_manager"
	RolePropertyManager = "property_manager"
	RoleKYCOfficer      = "kyc_officer"
	RoleCustomerSupport = "customer_support"
	RoleTeamLead        = "team_lead"
	RoleTeamMember      = "team_member"
)

// AllowedAssignableRoles defines which roles can be granted when creating or
// promoting a staff account. super_admin is deliberately excluded: it is
// seeded, never assigned through the API.
var AllowedAssignableRoles = map[string]bool{
	RoleAdmin:           true,
	RoleFinanceManager:  true,
	RolePropertyManager: true,
	RoleKYCOfficer:      true,
	RoleCustomerSupport: true,
	RoleTeamLead:        true,
	RoleTeamMember:      true,
}

// Membership role categories within a group
const (
	RoleCategoryTeamLead   = "team_lead"
	RoleCategoryTeamMember = "team_member"
)

var AllowedRoleCategories = map[string]bool{
	RoleCategoryTeamLead:   true,
	RoleCategoryTeamMember: true,
}

// Staff account lifecycle
const (
	StatusPendingVerification = "pending_verification"
	StatusActive              = "active"
	StatusDeactivated         = "deactivated"
)

// Business departments a group can belong to
const (
	DepartmentOperations      = "operations"
	DepartmentFinance         = "finance"
	DepartmentCompliance      = "compliance"
	DepartmentSales           = "sales"
	DepartmentCustomerSupport = "customer_support"
	DepartmentTechnology      = "technology"
)

var AllowedDepartments = map[string]bool{
	DepartmentOperations:      true,
	DepartmentFinance:         true,
	DepartmentCompliance:      true,
	DepartmentSales:           true,
	DepartmentCustomerSupport: true,
	DepartmentTechnology:      true,
}

// Permission actions
const (
	ActionView    = "view"
	ActionCreate  = "create"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionManage  = "manage"
)

var AllowedActions = map[string]bool{
	ActionView:    true,
	ActionCreate:  true,
	ActionEdit:    true,
	ActionDelete:  true,
	ActionApprove: true,
	ActionManage:  true,
}

// Audit actions recorded for staff administration mutations
const (
	AuditGroupCreated      = "group.created"
	AuditGroupUpdated      = "group.permissions_updated"
	AuditGroupDeleted      = "group.deleted"
	AuditMemberAdded       = "group.member_added"
	AuditMemberRemoved     = "group.member_removed"
	AuditAdminCreated      = "admin.created"
	AuditAdminApproved     = "admin.approved"
	AuditAdminRejected     = "admin.rejected"
	AuditAdminPromoted     = "admin.promoted"
	AuditAdminStatusChange = "admin.status_changed"
)
