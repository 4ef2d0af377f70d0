package test

// ClassifyRequest represents a routing dry run request
type ClassifyRequest struct {
	Message string `json:"message" binding:"required"`
}

// ClassifyResponse represents the router decision for a message
type ClassifyResponse struct {
	Success  bool   `json:"success"`
	Advisor  string `json:"advisor,omitempty"`
	Raw      string `json:"raw,omitempty"`
	Fallback bool   `json:"fallback"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
