package webhook

import (
	"leadlens/internal/core/lead"
)

// setter stores v on the input and reports whether v was usable
type setter func(*lead.Input, any) bool

// rule binds a canonical field to its synonym keys in priority order
type rule struct {
	field string
	keys  []string
	set   setter
}

func text(dst func(*lead.Input) *string) setter {
	return func(in *lead.Input, v any) bool {
		s, ok := textOf(v)
		if ok {
			*dst(in) = s
		}
		return ok
	}
}

func float(dst func(*lead.Input) **float64) setter {
	return func(in *lead.Input, v any) bool {
		f, ok := floatOf(v)
		if ok {
			*dst(in) = lead.Float(f)
		}
		return ok
	}
}

func integer(dst func(*lead.Input) **int64) setter {
	return func(in *lead.Input, v any) bool {
		n, ok := intOf(v)
		if ok {
			*dst(in) = lead.Int(n)
		}
		return ok
	}
}

// generic is the synonym table every source starts from
// order matters: earlier keys win when several are present
var generic = []rule{
	{"phone", []string{"phone", "tel", "contact_phone", "telephone", "phone_number"}, text(func(i *lead.Input) *string { return &i.Phone })},
	{"name", []string{"name", "fullname", "contact_name", "fio"}, text(func(i *lead.Input) *string { return &i.Name })},
	{"email", []string{"email", "mail"}, text(func(i *lead.Input) *string { return &i.Email })},
	{"company", []string{"company", "account"}, text(func(i *lead.Input) *string { return &i.Company })},
	{"group_name", []string{"group_name", "group", "campaign"}, text(func(i *lead.Input) *string { return &i.GroupName })},
	{"keywords", []string{"keywords", "keyword"}, text(func(i *lead.Input) *string { return &i.Keywords })},
	{"conversion", []string{"conversion", "event"}, text(func(i *lead.Input) *string { return &i.Conversion })},
	{"micro_conversion", []string{"micro_conversion", "micro"}, text(func(i *lead.Input) *string { return &i.MicroConversion })},
	{"micro_clicks", []string{"micro_clicks"}, integer(func(i *lead.Input) **int64 { return &i.MicroClicks })},
	{"city", []string{"city", "location"}, text(func(i *lead.Input) *string { return &i.City })},
	{"status", []string{"status"}, text(func(i *lead.Input) *string { return &i.Status })},
	{"amount", []string{"amount", "revenue", "value"}, float(func(i *lead.Input) **float64 { return &i.Amount })},
	{"spend", []string{"spend", "cost"}, float(func(i *lead.Input) **float64 { return &i.Spend })},
	{"product", []string{"product", "item"}, text(func(i *lead.Input) *string { return &i.Product })},
	{"page", []string{"page", "url"}, text(func(i *lead.Input) *string { return &i.Page })},
	{"time", []string{"time"}, text(func(i *lead.Input) *string { return &i.Time })},
	{"utm_source", []string{"utm_source"}, text(func(i *lead.Input) *string { return &i.UTMSource })},
	{"utm_medium", []string{"utm_medium"}, text(func(i *lead.Input) *string { return &i.UTMMedium })},
	{"utm_campaign", []string{"utm_campaign"}, text(func(i *lead.Input) *string { return &i.UTMCampaign })},
	{"utm_term", []string{"utm_term"}, text(func(i *lead.Input) *string { return &i.UTMTerm })},
	{"utm_content", []string{"utm_content"}, text(func(i *lead.Input) *string { return &i.UTMContent })},
}

// Fields lists the canonical fields the generic table can fill
func Fields() []string {
	out := make([]string, 0, len(generic))
	for _, r := range generic {
		out = append(out, r.field)
	}
	return out
}

// Synonyms returns the keys tried for field in priority order for a source
func Synonyms(sourceID, field string) []string {
	for _, r := range rulesFor(sourceID) {
		if r.field == field {
			return append([]string(nil), r.keys...)
		}
	}
	return nil
}

// extend copies the generic table and appends extra keys per field
func extend(extra map[string][]string) []rule {
	out := make([]rule, len(generic))
	for i, r := range generic {
		keys := append([]string(nil), r.keys...)
		keys = append(keys, extra[r.field]...)
		out[i] = rule{field: r.field, keys: keys, set: r.set}
	}
	return out
}
