package csv

import (
	stdcsv "encoding/csv"
	"strings"

	"leadlens/internal/core/lead"
	"leadlens/internal/core/normalize"
)

// Result is the outcome of parsing one upload
type Result struct {
	Leads   []lead.Input
	Rows    int      // data rows seen, blank lines excluded
	Dropped int      // rows without source, name or phone
	Columns []string // canonical fields recognized in the header
	Unknown []string // header cells that matched nothing
}

// Parse reads decoded CSV text
// the first non blank line is the header; malformed rows never abort the batch
func Parse(text string) (Result, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Result{}, ErrEmpty
	}

	sep := delimiter(lines[0])
	header := splitLine(lines[0], sep)

	var res Result
	sets := make([]assign, len(header))
	seen := map[string]bool{}
	for i, h := range header {
		c, ok := headerIndex[normalize.Key(h)]
		if !ok {
			if k := normalize.Key(h); k != "" {
				res.Unknown = append(res.Unknown, k)
			}
			continue
		}
		sets[i] = c.set
		if !seen[c.field] {
			seen[c.field] = true
			res.Columns = append(res.Columns, c.field)
		}
	}

	for _, line := range lines[1:] {
		res.Rows++
		in := lead.Input{}
		for i, cell := range splitLine(line, sep) {
			if i >= len(sets) || sets[i] == nil {
				continue
			}
			v := normalize.Value(normalize.Unquote(cell))
			if v == "" {
				continue
			}
			sets[i](&in, v)
		}
		if !hasIdentity(in) {
			res.Dropped++
			continue
		}
		res.Leads = append(res.Leads, in)
	}
	return res, nil
}

// ParseBytes decodes and parses an upload in one go
func ParseBytes(b []byte) (Result, error) {
	text, err := Decode(b)
	if err != nil {
		return Result{}, err
	}
	return Parse(text)
}

func hasIdentity(in lead.Input) bool {
	return in.Source != "" || in.Name != "" || in.Phone != ""
}

// splitLines splits on any line ending and drops blank lines
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// delimiter picks ';' or tab when the header clearly uses it, comma otherwise
func delimiter(header string) rune {
	commas := strings.Count(header, ",")
	switch {
	case strings.Count(header, ";") > commas:
		return ';'
	case strings.Count(header, "\t") > commas:
		return '\t'
	default:
		return ','
	}
}

// splitLine is quote aware; a line the csv reader rejects falls back to a plain split
func splitLine(line string, sep rune) []string {
	r := stdcsv.NewReader(strings.NewReader(line))
	r.Comma = sep
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = sep != '\t'
	rec, err := r.Read()
	if err != nil {
		return strings.Split(line, string(sep))
	}
	return rec
}
