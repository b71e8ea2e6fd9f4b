package response

type RegisterResponse struct {
	PhoneNumber string `json:"phone_number"`
}

type LoginResponse struct {
	RefreshToken string `json:"refresh_token"`
}
