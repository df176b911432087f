package models

const (
	RoleCompanyAdmin = "company_admin"
	RoleBranchAdmin  = "branch_admin"
	RoleAdmin        = "admin"
	RoleSuperAdmin   = "super_admin"
)

// Reviewer is the authenticated caller acting on the review workflow. It is
// populated by the auth middleware from the bearer token; this service trusts
// the upstream auth collaborator for identity and role.
type Reviewer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsElevated reports whether the reviewer may verify settlements.
func (r Reviewer) IsElevated() bool {
	switch r.Role {
	case RoleCompanyAdmin, RoleBranchAdmin, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
