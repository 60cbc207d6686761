package entities

// Customer is the subset of a CRM customer the pipeline reads.
type Customer struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}
