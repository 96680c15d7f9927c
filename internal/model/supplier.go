package model

type Supplier struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	ContactPerson string  `db:"contact_person" json:"contact_person"`
	Email         string  `db:"email" json:"email"`
	Phone         string  `db:"phone" json:"phone"`
	Address       *string `db:"address" json:"address"` // Nullable
}
