package models

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	Name    *string `bson:"name" json:"name" validate:"required"`
	Email   *string `bson:"email" json:"email" validate:"required,email"`
	Phone   *string `bson:"phone" json:"phone"`
	Message *string `bson:"message" json:"message" validate:"required"`
}
