package types

// PersonalInfo holds the contact details extracted from a resume.
// Every field is optional; an empty string means the field was not found.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
