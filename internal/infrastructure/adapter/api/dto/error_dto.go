package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`

	// Set for insufficient balance rejections
	Required  *int64 `json:"required,omitempty"`
	Available *int64 `json:"available,omitempty"`
}
