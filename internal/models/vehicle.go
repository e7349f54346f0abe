package models

// FleetVehicle represents a car available for hire.
// Required fields are pointers so a supplied zero value is told apart from a
// missing one.
type FleetVehicle struct {
	Make         *string  `bson:"make" json:"make" validate:"required"`
	Model        *string  `bson:"model" json:"model" validate:"required"`
	Year         *int     `bson:"year" json:"year" validate:"required,gte=1990,lte=2100"`
	Type         *string  `bson:"type" json:"type" validate:"required"`                 // Saloon, Estate, SUV, Coupe
	Transmission *string  `bson:"transmission" json:"transmission" validate:"required"` // Automatic or Manual
	Fuel         *string  `bson:"fuel" json:"fuel" validate:"required"`                 // Petrol, Diesel, Hybrid, Electric
	Seats        *int     `bson:"seats" json:"seats" validate:"required,gte=2,lte=9"`
	DailyRate    *float64 `bson:"daily_rate" json:"daily_rate" validate:"required,gte=0"`
	Colour       *string  `bson:"colour" json:"colour"`
	Image        *string  `bson:"image" json:"image"` // URL of vehicle image
	Tags         []string `bson:"tags" json:"tags"`
}
