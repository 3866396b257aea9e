package dto

// InsightRequest: payload for generating playlist insights
type InsightRequest struct {
	Prompt string `json:"prompt" binding:"required,max=4000"`
}

// InsightResponse: generated insight text
type InsightResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}
