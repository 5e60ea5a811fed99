package lead

import (
	"bytes"
	"encoding/json"
	"time"

	"leadlens/internal/core/normalize"
)

// Normalize turns a producer supplied partial into a storable Lead
// a blank created_at is stamped with now, a supplied one is kept verbatim
// numeric fields stay nil when absent and raw is never fabricated
func Normalize(in Input, now time.Time) Lead {
	out := Lead{
		CreatedAt:       normalize.Value(in.CreatedAt),
		Time:            normalize.Value(in.Time),
		Phone:           normalize.Value(in.Phone),
		Email:           normalize.Value(in.Email),
		Name:            normalize.Value(in.Name),
		Source:          normalize.Value(in.Source),
		Company:         normalize.Value(in.Company),
		GroupName:       normalize.Value(in.GroupName),
		Keywords:        normalize.Value(in.Keywords),
		Page:            normalize.Value(in.Page),
		Conversion:      normalize.Value(in.Conversion),
		MicroConversion: normalize.Value(in.MicroConversion),
		MicroClicks:     cloneInt(in.MicroClicks),
		City:            normalize.Value(in.City),
		Status:          normalize.Value(in.Status),
		Amount:          cloneFloat(in.Amount),
		Spend:           cloneFloat(in.Spend),
		Product:         normalize.Value(in.Product),
		UTMSource:       normalize.Value(in.UTMSource),
		UTMMedium:       normalize.Value(in.UTMMedium),
		UTMCampaign:     normalize.Value(in.UTMCampaign),
		UTMTerm:         normalize.Value(in.UTMTerm),
		UTMContent:      normalize.Value(in.UTMContent),
	}
	if out.CreatedAt == "" {
		out.CreatedAt = FormatTime(now)
	}
	if raw := bytes.TrimSpace(in.Raw); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		out.Raw = append(json.RawMessage(nil), raw...)
	}
	return out
}

// NormalizeAll normalizes a batch with a single timestamp
func NormalizeAll(in []Input, now time.Time) []Lead {
	out := make([]Lead, 0, len(in))
	for _, i := range in {
		out = append(out, Normalize(i, now))
	}
	return out
}

func cloneInt(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
