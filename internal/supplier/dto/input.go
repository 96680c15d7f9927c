package dto

type CreateSupplierInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	ContactPerson string  `json:"contact_person" validate:"required,max=255"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,max=64"`
	Address       *string `json:"address"`
}
