package csv

import (
	"leadlens/internal/core/lead"
	"leadlens/internal/core/normalize"
)

// assign stores a cleaned non empty cell value on the input
type assign func(*lead.Input, string)

func textCol(dst func(*lead.Input) *string) assign {
	return func(in *lead.Input, v string) { *dst(in) = v }
}

// unparseable numbers leave the field absent
func floatCol(dst func(*lead.Input) **float64) assign {
	return func(in *lead.Input, v string) {
		if f, ok := lead.ParseFloat(v); ok {
			*dst(in) = lead.Float(f)
		}
	}
}

func intCol(dst func(*lead.Input) **int64) assign {
	return func(in *lead.Input, v string) {
		if n, ok := lead.ParseInt(v); ok {
			*dst(in) = lead.Int(n)
		}
	}
}

type column struct {
	field   string
	headers []string
	set     assign
}

var columns = []column{
	{"created_at", []string{"created_at"}, textCol(func(i *lead.Input) *string { return &i.CreatedAt })},
	{"time", []string{"время", "time"}, textCol(func(i *lead.Input) *string { return &i.Time })},
	{"phone", []string{"телефон", "phone", "тел"}, textCol(func(i *lead.Input) *string { return &i.Phone })},
	{"name", []string{"имя", "name", "фио"}, textCol(func(i *lead.Input) *string { return &i.Name })},
	{"source", []string{"источник", "source"}, textCol(func(i *lead.Input) *string { return &i.Source })},
	{"company", []string{"компания", "company"}, textCol(func(i *lead.Input) *string { return &i.Company })},
	{"group_name", []string{"группа", "group", "group_name"}, textCol(func(i *lead.Input) *string { return &i.GroupName })},
	{"keywords", []string{"ключевые слова", "keywords", "keyword"}, textCol(func(i *lead.Input) *string { return &i.Keywords })},
	{"conversion", []string{"конверсия", "conversion"}, textCol(func(i *lead.Input) *string { return &i.Conversion })},
	{"micro_conversion", []string{"микроконверсия", "micro_conversion"}, textCol(func(i *lead.Input) *string { return &i.MicroConversion })},
	{"micro_clicks", []string{"кол-во наж фильтар", "кол-во нажатий фильтра", "micro_clicks"}, intCol(func(i *lead.Input) **int64 { return &i.MicroClicks })},
	{"city", []string{"город", "city"}, textCol(func(i *lead.Input) *string { return &i.City })},
	{"status", []string{"статус", "status"}, textCol(func(i *lead.Input) *string { return &i.Status })},
	{"amount", []string{"сумма", "amount"}, floatCol(func(i *lead.Input) **float64 { return &i.Amount })},
	{"spend", []string{"расход", "spend"}, floatCol(func(i *lead.Input) **float64 { return &i.Spend })},
	{"product", []string{"продукт", "product"}, textCol(func(i *lead.Input) *string { return &i.Product })},
	{"utm_source", []string{"utm_source", "utm source"}, textCol(func(i *lead.Input) *string { return &i.UTMSource })},
	{"utm_medium", []string{"utm_medium", "utm medium"}, textCol(func(i *lead.Input) *string { return &i.UTMMedium })},
	{"utm_campaign", []string{"utm_campaign", "utm campaign"}, textCol(func(i *lead.Input) *string { return &i.UTMCampaign })},
	{"utm_term", []string{"utm_term", "utm term"}, textCol(func(i *lead.Input) *string { return &i.UTMTerm })},
	{"utm_content", []string{"utm_content", "utm content"}, textCol(func(i *lead.Input) *string { return &i.UTMContent })},
	{"email", []string{"email", "почта", "e-mail"}, textCol(func(i *lead.Input) *string { return &i.Email })},
	{"page", []string{"страница", "page"}, textCol(func(i *lead.Input) *string { return &i.Page })},
}

// headerIndex maps a folded header to its column
var headerIndex = func() map[string]column {
	m := make(map[string]column, len(columns)*3)
	for _, c := range columns {
		for _, h := range c.headers {
			m[normalize.Key(h)] = c
		}
	}
	return m
}()
