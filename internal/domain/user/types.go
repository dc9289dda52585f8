package user

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Capability is one explicitly enumerated permission. Authorization checks
// compare against this set, never against role names or field reflection.
type Capability string

const (
	CapBook           Capability = "book"
	CapManageUnits    Capability = "manage_units"
	CapManageCredits  Capability = "manage_credits"
	CapIngestUsage    Capability = "ingest_usage"
	CapViewAnyBooking Capability = "view_any_booking"
	CapManageUsers    Capability = "manage_users"
)

var roleCapabilities = map[Role][]Capability{
	RoleMember: {CapBook},
	RoleStaff:  {CapBook, CapViewAnyBooking, CapIngestUsage},
	RoleAdmin:  {CapBook, CapViewAnyBooking, CapIngestUsage, CapManageUnits, CapManageCredits, CapManageUsers},
}

func (r Role) Capabilities() []Capability {
	return roleCapabilities[r]
}

func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}
