package dto

import "time"

// APIResponse provides the base structured API response envelope
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-30T12:01:05.123Z"`
}

// NewAPIResponse creates a successful API response wrapping data
func NewAPIResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a successful API response with a message only
func NewMessageResponse(message string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// HealthResponse reports process liveness and catalog state
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	CatalogLoaded bool   `json:"catalogLoaded" example:"true"`
	CatalogSize   int    `json:"catalogSize" example:"4612"`
}
