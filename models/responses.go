package models

// MessageResponse is the acknowledgement body returned by operations that
// have no resource to return (e.g. user deletion).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
