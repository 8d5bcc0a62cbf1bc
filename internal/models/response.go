package models

// Response is the envelope every API endpoint answers with.
// swagger:model Response
type Response struct {
	// example: true
	Success bool `json:"success"`
	// Payload, shape depends on the endpoint
	Data any `json:"data,omitempty"`
	// example: Game not found
	Error string `json:"error,omitempty"`
}
