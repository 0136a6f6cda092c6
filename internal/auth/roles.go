package auth

import "github.com/yuzuhara/survey-admin-api/internal/models"

// Permission names an action a role may perform.
type Permission string

const (
	PermGetUsers        Permission = "getUsers"
	PermManageUsers     Permission = "manageUsers"
	PermGetTeams        Permission = "getTeams"
	PermManageTeams     Permission = "manageTeams"
	PermGetForms        Permission = "getForms"
	PermManageForms     Permission = "manageForms"
	PermGetQuestions    Permission = "getQuestions"
	PermManageQuestions Permission = "manageQuestions"
)

// Registry is the role → permission table. It is built once at startup
// and never mutated afterwards; handlers only ever read it.
type Registry struct {
	rights map[models.UserRole]map[Permission]struct{}
}

// NewRegistry builds the static permission table. Plain users hold no
// administrative rights; admins hold all of them.
func NewRegistry() *Registry {
	adminRights := []Permission{
		PermGetUsers,
		PermManageUsers,
		PermGetTeams,
		PermManageTeams,
		PermGetForms,
		PermManageForms,
		PermGetQuestions,
		PermManageQuestions,
	}

	rights := map[models.UserRole]map[Permission]struct{}{
		models.RoleUser:  {},
		models.RoleAdmin: {},
	}
	for _, p := range adminRights {
		rights[models.RoleAdmin][p] = struct{}{}
	}

	return &Registry{rights: rights}
}

// Allows reports whether the role is granted the permission.
func (r *Registry) Allows(role models.UserRole, perm Permission) bool {
	perms, ok := r.rights[role]
	if !ok {
		return false
	}
	_, ok = perms[perm]
	return ok
}
