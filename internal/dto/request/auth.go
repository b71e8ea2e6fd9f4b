package request

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,numeric,min=7,max=10"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}
