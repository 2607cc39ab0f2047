package domain

// Role enumerates caller roles governing authorization.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleCustomer   Role = "CUSTOMER"
)

// Valid reports whether the role belongs to the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether the role may access the admin surface.
func (r Role) IsStaff() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
