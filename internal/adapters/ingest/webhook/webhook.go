// Package webhook maps arbitrary keyed payloads from third party sources onto lead inputs
// Mapping is synonym driven: each canonical field takes the first present key
// from a fixed priority list; unknown keys only survive in raw
package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"leadlens/internal/core/lead"
	"leadlens/internal/core/normalize"
)

// Document is a decoded payload, numbers are kept as json.Number
type Document = map[string]any

var (
	// ErrEmpty is returned for an empty body
	ErrEmpty = errors.New("webhook: empty payload")
	// ErrNotObject is returned when the payload is valid JSON but not an object
	ErrNotObject = errors.New("webhook: payload must be a JSON object")
)

// Decode parses body as a single JSON object
func Decode(body []byte) (Document, error) {
	b := bytes.TrimSpace(body)
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	if b[0] != '{' {
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return nil, ErrNotObject
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("webhook: unexpected trailing data")
	}
	return doc, nil
}

// Map builds a lead input from a decoded document
// sourceID always wins over any source key in the payload
// created_at is left blank so the ingest time is stamped on normalization
// raw is the original body when given, otherwise the re-encoded document
func Map(sourceID string, doc Document, raw json.RawMessage) lead.Input {
	in := lead.Input{}
	if doc == nil {
		doc = Document{}
	}

	idx := fold(doc)
	for _, r := range rulesFor(sourceID) {
		for _, k := range r.keys {
			v, ok := lookup(doc, idx, k)
			if !ok {
				continue
			}
			if r.set(&in, v) {
				break
			}
		}
	}

	in.Source = normalize.Value(sourceID)

	if len(bytes.TrimSpace(raw)) > 0 {
		in.Raw = append(json.RawMessage(nil), raw...)
	} else if b, err := json.Marshal(doc); err == nil {
		in.Raw = b
	}
	return in
}

// fold indexes document keys by their folded form
// on collisions the smallest original key wins so mapping stays deterministic
func fold(doc Document) map[string]string {
	idx := make(map[string]string, len(doc))
	for k := range doc {
		fk := normalize.Key(k)
		if prev, ok := idx[fk]; ok && prev < k {
			continue
		}
		idx[fk] = k
	}
	return idx
}

// lookup tries the exact key first and then the case folded one
func lookup(doc Document, idx map[string]string, key string) (any, bool) {
	if v, ok := doc[key]; ok {
		return v, v != nil
	}
	if orig, ok := idx[key]; ok {
		v := doc[orig]
		return v, v != nil
	}
	return nil, false
}

// textOf renders a scalar as text, nested CRM shapes like [{"VALUE":"x"}] are unwrapped
func textOf(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s := normalize.Value(x)
		return s, s != ""
	case json.Number:
		return x.String(), x.String() != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case []any:
		for _, e := range x {
			if s, ok := textOf(e); ok {
				return s, true
			}
		}
	case map[string]any:
		if inner, ok := valueOf(x); ok {
			return textOf(inner)
		}
	}
	return "", false
}

// floatOf reads a number from a JSON number or a numeric looking string
func floatOf(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		return lead.ParseFloat(x.String())
	case float64:
		return x, true
	case string:
		return lead.ParseFloat(x)
	case []any:
		for _, e := range x {
			if f, ok := floatOf(e); ok {
				return f, true
			}
		}
	case map[string]any:
		if inner, ok := valueOf(x); ok {
			return floatOf(inner)
		}
	}
	return 0, false
}

func intOf(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		return lead.ParseInt(x.String())
	case string:
		return lead.ParseInt(x)
	}
	f, ok := floatOf(v)
	if !ok {
		return 0, false
	}
	return lead.ParseInt(strconv.FormatFloat(f, 'f', -1, 64))
}

func valueOf(m map[string]any) (any, bool) {
	for _, k := range []string{"value", "VALUE", "Value"} {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
