package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=225,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin productManager regularUser"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=30"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmResetRequest struct {
	Password string `json:"password" validate:"required,min=6,max=30"`
}
