package dto

import "time"

type ReportIssueRequest struct {
	Description             string  `json:"description" validate:"required"`
	EstimatedCompletionDate *string `json:"estimatedCompletionDate"`
	ReportedDate            *string `json:"reportedDate"`
}

type ResolveIssueRequest struct {
	ResolvedDate *string `json:"resolvedDate"`
	Note         string  `json:"note" validate:"max=1000"`
}

type IssueQuery struct {
	OpenOnly bool `form:"openOnly"`
}

type MaintenanceIssueResponse struct {
	ID                      uint      `json:"id"`
	RoomID                  uint      `json:"roomId"`
	Description             string    `json:"description"`
	ReportedDate            string    `json:"reportedDate"`
	EstimatedCompletionDate *string   `json:"estimatedCompletionDate"`
	ResolvedDate            *string   `json:"resolvedDate"`
	ResolutionNote          string    `json:"resolutionNote,omitempty"`
	Overdue                 bool      `json:"overdue"`
	CreatedAt               time.Time `json:"createdAt"`
}
