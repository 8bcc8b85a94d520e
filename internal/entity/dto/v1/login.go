package dto

// LoginRequest -.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginResponse -.
type LoginResponse struct {
	Token string `json:"token"`
}
