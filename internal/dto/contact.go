package dto

// CreateLeadRequest is the contact-form payload. Field constraints mirror
// the public site's form validation.
type CreateLeadRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=32"`
	WebsiteType string `json:"website_type" validate:"omitempty,max=64"`
	Message     string `json:"message" validate:"required,min=10,max=4000"`
}
