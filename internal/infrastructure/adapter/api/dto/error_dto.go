package dto

// ErrorResponse represents a standardized error response for the API.
// Status carries the record's current status when an operation was refused
// because of it, RequiredRole the role the caller lacked.
type ErrorResponse struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	Status       string `json:"status,omitempty"`
	RequiredRole string `json:"requiredRole,omitempty"`
	Resource     any    `json:"resource,omitempty"`
}
