package entity

// Role is a privilege label attached to a user record.
// Any role can be overwritten by a direct grant; there is no ordering.
type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// Valid reports whether r is a grantable role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleInstructor
}
