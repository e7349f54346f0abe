package models

// DefaultRating is the rating stored when a testimonial omits one.
const DefaultRating = 5

// Testimonial is a customer review shown on the site. An explicit null
// rating is stored as null.
type Testimonial struct {
	Name    *string `bson:"name" json:"name" validate:"required"`
	Role    *string `bson:"role" json:"role"`
	Content *string `bson:"content" json:"content" validate:"required"`
	Rating  *int    `bson:"rating" json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// NewTestimonial returns a Testimonial carrying its defaults, ready to be
// decoded onto.
func NewTestimonial() *Testimonial {
	rating := DefaultRating
	return &Testimonial{Rating: &rating}
}
