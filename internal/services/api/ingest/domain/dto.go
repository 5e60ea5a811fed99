// Package domain holds DTOs for ingest http and service contracts
package domain

import "leadlens/internal/adapters/ingest/webhook"

// LeadsResult is returned by the JSON batch endpoint
type LeadsResult struct {
	Inserted int `json:"inserted" example:"2"`
}

// WebhookResult acknowledges one webhook delivery
type WebhookResult struct {
	OK       bool   `json:"ok"       example:"true"`
	Source   string `json:"source"   example:"bitrix24"`
	Inserted int    `json:"inserted" example:"1"`
}

// ImportResult summarizes one CSV upload
type ImportResult struct {
	Success  bool     `json:"success"           example:"true"`
	Imported int      `json:"imported"          example:"120"`
	Dropped  int      `json:"dropped"           example:"3"`
	ImportID string   `json:"import_id"         example:"0f8c5a4e-8f7e-4b8e-9a57-1d2f1c3b4a5d"`
	Columns  []string `json:"columns,omitempty"`
	Unknown  []string `json:"unknown,omitempty"`
}

// DuplicateQuery names the identity to look up, either field may be blank
type DuplicateQuery struct {
	Phone string `json:"phone,omitempty" example:"+79000000000"`
	Email string `json:"email,omitempty" example:"ivan@example.com"`
}

// Connector describes one webhook integration
type Connector = webhook.Connector
