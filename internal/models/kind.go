package models

import "strings"

// Kind names an entity kind and the collection its records live in.
type Kind string

const (
	KindFleetVehicle   Kind = "Fleetvehicle"
	KindClaim          Kind = "Claim"
	KindTestimonial    Kind = "Testimonial"
	KindPost           Kind = "Post"
	KindContactMessage Kind = "Contactmessage"
)

// Kinds lists every entity kind in catalogue order.
var Kinds = []Kind{
	KindFleetVehicle,
	KindClaim,
	KindTestimonial,
	KindPost,
	KindContactMessage,
}

// Collection returns the collection name, the lower-cased kind name.
func (k Kind) Collection() string {
	return strings.ToLower(string(k))
}

// KindNames returns the kind names as plain strings.
func KindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return names
}
