package entities

// Role grants either full or sector-scoped access.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// DefaultFullVisibilitySectors see every request regardless of sector.
var DefaultFullVisibilitySectors = []string{"Gerente", "Diretor"}

// User is an operator of the dashboard.
//
// Password is write-only: it is accepted on create/update and never leaves
// the service (see Sanitized).
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Sector   string `json:"sector"`
}

// Sanitized returns a copy of the user without the password.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
