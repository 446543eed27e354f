package dto

// LoginForm is the body for POST /login.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterForm is the body for POST /register.
type RegisterForm struct {
	Username    string `form:"username"`
	Password    string `form:"password"`
	Email       string `form:"email"`
	DisplayName string `form:"display_name"`
}

// ChangePasswordForm is the body for POST /change_password.
type ChangePasswordForm struct {
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}
