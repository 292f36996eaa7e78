package entity

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProductManager Role = "productManager"
	RoleRegularUser    Role = "regularUser"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProductManager, RoleRegularUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageProducts covers catalog mutations (create/update/delete product).
func (r Role) CanManageProducts() bool {
	return r == RoleAdmin || r == RoleProductManager
}

type User struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}
