package user

type Role string

const (
	RolePlatformAdmin     Role = "platform_admin"
	RoleAgencyRecruiter   Role = "agency_recruiter"
	RoleEmployerRecruiter Role = "employer_recruiter"
)

func (r Role) Valid() bool {
	switch r {
	case RolePlatformAdmin, RoleAgencyRecruiter, RoleEmployerRecruiter:
		return true
	default:
		return false
	}
}

type User struct {
	ID               string
	Name             string
	Email            string
	Role             Role
	OrganizationID   string
	OrganizationName string
	Avatar           string
}

// Actor is the user a request acts as. It is passed explicitly to every
// operation that depends on who is asking.
type Actor struct {
	User
}

func (a Actor) IsAdmin() bool {
	return a.Role == RolePlatformAdmin
}
