package auth

type SignUpDTO struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Username        string `json:"username"`
}

type SignInDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordDTO struct {
	Email string `json:"email"`
}

type UpdatePasswordDTO struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
