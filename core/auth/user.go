package auth

// Role partitions users into plain users and admins.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// GuestUsername is what pages render for unauthenticated visitors.
const GuestUsername = "guest"

// User is an account record. Password is stored and compared in plaintext —
// a known defect kept for compatibility with the existing store contents;
// see DESIGN.md before changing.
type User struct {
	ID       int64
	Username string
	Password string
	Role     Role
}

// Guest returns the unauthenticated sentinel identity. It has no id, is
// never persisted, and is constructed fresh per request.
func Guest() User {
	return User{Username: GuestUsername, Role: RoleUser}
}

// IsGuest reports whether the user is the unauthenticated sentinel.
func (u User) IsGuest() bool {
	return u.ID == 0
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
