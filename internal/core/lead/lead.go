// Package lead holds the canonical lead record and its normalization rules
package lead

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// TimeLayout is the canonical created_at layout
// fixed width so that lexicographic order matches chronological order
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Lead is one persisted marketing event
// text fields use "" for absent, numeric fields use nil
type Lead struct {
	ID              int64           `json:"id"                         example:"42"`
	CreatedAt       string          `json:"created_at"                 example:"2025-01-02T10:00:00.000Z"`
	Time            string          `json:"time,omitempty"             example:"10:00"`
	Phone           string          `json:"phone,omitempty"            example:"+79000000000"`
	Email           string          `json:"email,omitempty"            example:"ivan@example.com"`
	Name            string          `json:"name,omitempty"             example:"Иван"`
	Source          string          `json:"source,omitempty"           example:"google-ads"`
	Company         string          `json:"company,omitempty"          example:"ООО Ромашка"`
	GroupName       string          `json:"group_name,omitempty"       example:"brand"`
	Keywords        string          `json:"keywords,omitempty"         example:"купить диван"`
	Page            string          `json:"page,omitempty"             example:"/catalog"`
	Conversion      string          `json:"conversion,omitempty"       example:"purchase"`
	MicroConversion string          `json:"micro_conversion,omitempty" example:"filter_click"`
	MicroClicks     *int64          `json:"micro_clicks,omitempty"     example:"3"`
	City            string          `json:"city,omitempty"             example:"Москва"`
	Status          string          `json:"status,omitempty"           example:"new"`
	Amount          *float64        `json:"amount,omitempty"           example:"1500"`
	Spend           *float64        `json:"spend,omitempty"            example:"200"`
	Product         string          `json:"product,omitempty"          example:"sofa"`
	UTMSource       string          `json:"utm_source,omitempty"       example:"google"`
	UTMMedium       string          `json:"utm_medium,omitempty"       example:"cpc"`
	UTMCampaign     string          `json:"utm_campaign,omitempty"     example:"spring"`
	UTMTerm         string          `json:"utm_term,omitempty"`
	UTMContent      string          `json:"utm_content,omitempty"`
	Raw             json.RawMessage `json:"raw,omitempty"              swaggertype:"object"`
}

// Input is a partial lead as accepted from producers, every field optional
type Input struct {
	CreatedAt       string          `json:"created_at,omitempty"       validate:"omitempty,max=64"`
	Time            string          `json:"time,omitempty"             validate:"omitempty,max=64"`
	Phone           string          `json:"phone,omitempty"            validate:"omitempty,max=64"`
	Email           string          `json:"email,omitempty"            validate:"omitempty,max=320"`
	Name            string          `json:"name,omitempty"             validate:"omitempty,max=512"`
	Source          string          `json:"source,omitempty"           validate:"omitempty,max=256"`
	Company         string          `json:"company,omitempty"          validate:"omitempty,max=512"`
	GroupName       string          `json:"group_name,omitempty"       validate:"omitempty,max=512"`
	Keywords        string          `json:"keywords,omitempty"`
	Page            string          `json:"page,omitempty"             validate:"omitempty,max=2048"`
	Conversion      string          `json:"conversion,omitempty"       validate:"omitempty,max=256"`
	MicroConversion string          `json:"micro_conversion,omitempty" validate:"omitempty,max=256"`
	MicroClicks     *int64          `json:"micro_clicks,omitempty"`
	City            string          `json:"city,omitempty"             validate:"omitempty,max=256"`
	Status          string          `json:"status,omitempty"           validate:"omitempty,max=128"`
	Amount          *float64        `json:"amount,omitempty"`
	Spend           *float64        `json:"spend,omitempty"`
	Product         string          `json:"product,omitempty"          validate:"omitempty,max=512"`
	UTMSource       string          `json:"utm_source,omitempty"       validate:"omitempty,max=512"`
	UTMMedium       string          `json:"utm_medium,omitempty"       validate:"omitempty,max=512"`
	UTMCampaign     string          `json:"utm_campaign,omitempty"     validate:"omitempty,max=512"`
	UTMTerm         string          `json:"utm_term,omitempty"         validate:"omitempty,max=512"`
	UTMContent      string          `json:"utm_content,omitempty"      validate:"omitempty,max=512"`
	Raw             json.RawMessage `json:"raw,omitempty"              swaggertype:"object"`
}

// Converted reports whether the lead counts as a conversion
func (l Lead) Converted() bool { return strings.TrimSpace(l.Conversion) != "" }

// FormatTime renders t in the canonical created_at layout (UTC, millisecond precision)
func FormatTime(t time.Time) string { return t.UTC().Format(TimeLayout) }

// ValidRaw reports whether raw is absent or a JSON object
func ValidRaw(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return true
	}
	if b[0] != '{' {
		return false
	}
	return json.Valid(b)
}
