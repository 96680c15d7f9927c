package dto

type CreateCustomerInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"max=64"`
	Address *string `json:"address"`
}
