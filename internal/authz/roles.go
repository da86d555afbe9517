package authz

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

func IsAdmin(role string) bool {
	return role == RoleAdmin
}
