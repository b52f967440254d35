package dto

// SessionHistoryRequest replaces or extends a session's course history
type SessionHistoryRequest struct {
	Courses []string `json:"courses" binding:"required" example:"198:111,640:151"`
}

// SessionHistoryResponse is a session's ordered course history
type SessionHistoryResponse struct {
	SessionID string   `json:"sessionId" example:"4f7c3a52-9a1e-4f76-9f1b-2f1f4b1f0d3c"`
	Courses   []string `json:"courses"`
}
