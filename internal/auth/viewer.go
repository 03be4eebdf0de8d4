package auth

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Viewer is the requester identity a request runs under. The zero value
// is an anonymous requester.
type Viewer struct {
	UserID string
	Name   string
	Role   string
}

var Anonymous = Viewer{}

// System is the internal identity services use for unscoped reads,
// e.g. loading a draft before an ownership check.
var System = Viewer{UserID: "system", Name: "system", Role: RoleAdmin}

func (v Viewer) IsAnonymous() bool {
	return v.UserID == ""
}

// IsElevated reports whether the viewer holds staff privileges.
func (v Viewer) IsElevated() bool {
	return v.Role == RoleStaff || v.Role == RoleAdmin
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
