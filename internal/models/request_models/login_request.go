package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AddAccountRequest is an admin-side registration; no confirmation field.
type AddAccountRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetRoomRequest struct {
	Room string `json:"room" binding:"required"`
}

type AdjustTokensRequest struct {
	// Delta may be negative; the balance is clamped at zero.
	Delta *int `json:"delta" binding:"required,min=-1000000000,max=1000000000"`
}
