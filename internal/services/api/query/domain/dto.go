// Package domain holds DTOs for query http and service contracts
package domain

// Bounds on created_at are inclusive and compared as text
// canonical timestamps sort chronologically, a bare date like 2025-01-31 works as a prefix bound

// ListInput filters the lead listing, blank fields do not filter
type ListInput struct {
	From    string `json:"from,omitempty"    example:"2025-01-01"`
	To      string `json:"to,omitempty"      example:"2025-01-31T23:59:59.999Z"`
	Source  string `json:"source,omitempty"  example:"google-ads"`
	City    string `json:"city,omitempty"    example:"Москва"`
	Product string `json:"product,omitempty" example:"sofa"`
}

// MetricsInput bounds the aggregate window
type MetricsInput struct {
	From string `json:"from,omitempty" example:"2025-01-01"`
	To   string `json:"to,omitempty"   example:"2025-01-31T23:59:59.999Z"`
}

// Metrics is the aggregate over the window
// AvgCPA is null when there are no conversions
type Metrics struct {
	Total       int64    `json:"total"       example:"3"`
	Conversions int64    `json:"conversions" example:"1"`
	Spend       float64  `json:"spend"       example:"200"`
	Amount      float64  `json:"amount"      example:"100"`
	AvgCPA      *float64 `json:"avg_cpa"     example:"200"`
}
