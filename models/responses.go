package models

// Message is the uniform response body for every status and error payload
// the API produces: a single human-readable string under the "message" key.
// There are no structured error codes.
type Message struct {
	Message string `json:"message"`
}
