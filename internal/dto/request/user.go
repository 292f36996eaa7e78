package request

type UserCreateRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=225,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin productManager regularUser"`
}

type UserUpdateRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,min=6,max=225,email"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=admin productManager regularUser"`
}
