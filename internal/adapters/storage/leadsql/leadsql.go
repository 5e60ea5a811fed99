// Package leadsql maps lead.Lead to and from rows of the leads table
// the statements use $n placeholders and run unchanged on postgres and sqlite
package leadsql

import (
	"encoding/json"

	"leadlens/internal/core/lead"
	"leadlens/internal/platform/store"
	pstrings "leadlens/internal/platform/strings"
)

// Columns lists the writable columns in Args order
const Columns = `created_at, "time", phone, email, name, source, company, group_name, keywords, page,
conversion, micro_conversion, micro_clicks, city, status, amount, spend, product,
utm_source, utm_medium, utm_campaign, utm_term, utm_content, raw`

// Select is the column list Scan expects
const Select = "id, " + Columns

// Insert stores one lead and returns its id
const Insert = `insert into leads (` + Columns + `)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
returning id`

// Args returns the insert arguments, blank text and empty raw are stored as NULL
func Args(l lead.Lead) []any {
	var raw any
	if len(l.Raw) > 0 {
		raw = string(l.Raw)
	}
	return []any{
		l.CreatedAt,
		pstrings.SQLNull(l.Time),
		pstrings.SQLNull(l.Phone),
		pstrings.SQLNull(l.Email),
		pstrings.SQLNull(l.Name),
		pstrings.SQLNull(l.Source),
		pstrings.SQLNull(l.Company),
		pstrings.SQLNull(l.GroupName),
		pstrings.SQLNull(l.Keywords),
		pstrings.SQLNull(l.Page),
		pstrings.SQLNull(l.Conversion),
		pstrings.SQLNull(l.MicroConversion),
		l.MicroClicks,
		pstrings.SQLNull(l.City),
		pstrings.SQLNull(l.Status),
		l.Amount,
		l.Spend,
		pstrings.SQLNull(l.Product),
		pstrings.SQLNull(l.UTMSource),
		pstrings.SQLNull(l.UTMMedium),
		pstrings.SQLNull(l.UTMCampaign),
		pstrings.SQLNull(l.UTMTerm),
		pstrings.SQLNull(l.UTMContent),
		raw,
	}
}

// Scan reads one row selected with Select, rows work too
func Scan(row store.Row) (lead.Lead, error) {
	var (
		l    lead.Lead
		text [22]*string
		raw  []byte
	)
	err := row.Scan(
		&l.ID, &l.CreatedAt,
		&text[0], &text[1], &text[2], &text[3], &text[4], &text[5], &text[6], &text[7], &text[8],
		&text[9], &text[10], &l.MicroClicks, &text[11], &text[12], &l.Amount, &l.Spend, &text[13],
		&text[14], &text[15], &text[16], &text[17], &text[18], &raw,
	)
	if err != nil {
		return lead.Lead{}, err
	}

	dst := []*string{
		&l.Time, &l.Phone, &l.Email, &l.Name, &l.Source, &l.Company, &l.GroupName, &l.Keywords, &l.Page,
		&l.Conversion, &l.MicroConversion, &l.City, &l.Status, &l.Product,
		&l.UTMSource, &l.UTMMedium, &l.UTMCampaign, &l.UTMTerm, &l.UTMContent,
	}
	for i, p := range dst {
		*p = pstrings.Deref(text[i])
	}
	if len(raw) > 0 {
		l.Raw = json.RawMessage(raw)
	}
	return l, nil
}
