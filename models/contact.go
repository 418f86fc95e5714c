package models

// ContactRequest is a contact-form submission. It is never persisted; it
// exists only for the duration of one email-send request. Source and Services
// are freeform and optional.
type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Source   string `json:"source"`
	Services string `json:"services"`
}
