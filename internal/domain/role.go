package domain

// Role is the closed set of caller roles carried in session claims.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may manage campaigns, beneficiaries and reports.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleVolunteer:
		return true
	case RoleDonor:
		return false
	default:
		return false
	}
}

// SelfRegistrable reports whether the role may be chosen at public registration.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleDonor, RoleVolunteer:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
