package models

type Role int

const (
	NO_ROLE Role = iota
	STAFF
	MANAGER
	ADMIN
	// SUPPORT_ADMIN is reserved for internal operators and is the only role
	// allowed to act across organizations.
	SUPPORT_ADMIN
)

func (r Role) String() string {
	switch r {
	case STAFF:
		return "STAFF"
	case MANAGER:
		return "MANAGER"
	case ADMIN:
		return "ADMIN"
	case SUPPORT_ADMIN:
		return "SUPPORT_ADMIN"
	}
	return "NO_ROLE"
}

func RoleFromString(s string) Role {
	switch s {
	case "STAFF":
		return STAFF
	case "MANAGER":
		return MANAGER
	case "ADMIN":
		return ADMIN
	case "SUPPORT_ADMIN":
		return SUPPORT_ADMIN
	}
	return NO_ROLE
}

// Credentials identify the authenticated caller. They are parsed from the
// bearer token by the api middleware and threaded explicitly from there on.
type Credentials struct {
	OrganizationId string
	UserId         string
	Role           Role
}
