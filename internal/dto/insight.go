package dto

import (
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
)

// InsightRequest carries the free-text business question.
type InsightRequest struct {
	Question string `json:"question" binding:"required"`
}

// InsightResponse is the NL-to-SQL answer envelope: the shaped result, the
// exact SQL executed for transparency, and the original question.
type InsightResponse struct {
	Result any    `json:"result"`
	SQL    string `json:"sql"`
	Query  string `json:"query"`
}

// ToInsightResponse converts the service result to the response DTO.
func ToInsightResponse(res *portssvc.InsightResult) InsightResponse {
	return InsightResponse{
		Result: res.Result,
		SQL:    res.SQL,
		Query:  res.Query,
	}
}
