package usecase

import "encoding/json"

type CreateLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status,omitempty"`
}

type IngestEventInput struct {
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	LeadID    int             `json:"leadId,omitempty"`
	Email     string          `json:"email,omitempty"`
}

type IngestEventOutput struct {
	Success      bool `json:"success"`
	ScoreUpdated bool `json:"scoreUpdated"`
	NewScore     *int `json:"newScore,omitempty"`
}

type UpdateRuleInput struct {
	Points   *int  `json:"points,omitempty"`
	IsActive *bool `json:"isActive,omitempty"`
}
