package domain

// Role labels carried in tokens and stored on employees. They are flat: no
// role implies another.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Roles lists every assignable role.
var Roles = []string{RoleAdmin, RoleHR, RoleEmployee}

// ValidRole reports whether r is one of Roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
