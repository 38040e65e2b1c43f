package dto

import "time"

// APIResponse is the envelope for every successful response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// SuccessResponse carries a plain confirmation message
type SuccessResponse struct {
	Message string `json:"message" example:"Club deleted successfully"`
}

// NewSuccessResponse wraps data in a successful APIResponse
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse wraps data in a successful APIResponse with a message
func NewMessageResponse(message string, data interface{}) APIResponse {
	resp := NewSuccessResponse(data)
	resp.Message = message
	return resp
}
