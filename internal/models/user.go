package models

// Role represents the role encoded in a user's access token
type Role int

const (
	RoleStudent    Role = 1
	RoleInstructor Role = 2
	RoleAdmin      Role = 3
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleInstructor:
		return "instructor"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Principal is the authenticated actor making a request
type Principal struct {
	UserID int
	Role   Role
}

