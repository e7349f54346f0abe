package models

// Claim is an insurance claim submitted through the claims form.
// Files holds the storage paths of uploaded attachments and is only ever
// set by the server.
type Claim struct {
	FullName         *string  `bson:"full_name" json:"full_name" validate:"required"`
	Email            *string  `bson:"email" json:"email" validate:"required,email"`
	Phone            *string  `bson:"phone" json:"phone" validate:"required"`
	IncidentDate     *string  `bson:"incident_date" json:"incident_date" validate:"required"`
	IncidentLocation *string  `bson:"incident_location" json:"incident_location" validate:"required"`
	Description      *string  `bson:"description" json:"description" validate:"required"`
	PolicyNumber     *string  `bson:"policy_number" json:"policy_number"`
	VehicleReg       *string  `bson:"vehicle_reg" json:"vehicle_reg"`
	Files            []string `bson:"files" json:"files"`
}
