package user

// Role orders marketplace actors by privilege: buyer < vendor < admin.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleBuyer:  1,
	RoleVendor: 2,
	RoleAdmin:  3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles never qualify on either side.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	minRank, minOK := roleRank[min]
	return ok && minOK && rank >= minRank
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
