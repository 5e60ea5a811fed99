package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"*"}
	assert.Equal(t, def, IfEmpty(nil, def))
	assert.Equal(t, def, IfEmpty([]string{}, def))
	assert.Equal(t, []string{"https://shop.example.com"}, IfEmpty([]string{"https://shop.example.com"}, def))
}

func TestMustString(t *testing.T) {
	assert.Equal(t, "ingest", MustString("ingest", "name"))
	assert.PanicsWithValue(t, "name is required", func() { MustString(" \t", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"ingest":        "/ingest",
		"/query/":       "/query",
		"  //meta// ":   "/meta",
		"/api/v1/leads": "/api/v1/leads",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustPrefix(in), "input %q", in)
	}
	for _, in := range []string{"", "/", " // "} {
		assert.Panics(t, func() { MustPrefix(in) }, "input %q", in)
	}
}

func TestSQLNull(t *testing.T) {
	assert.Nil(t, SQLNull(""))
	assert.Nil(t, SQLNull("   "))
	assert.Equal(t, "Казань", SQLNull("Казань"))
	assert.Equal(t, " +7 900 ", SQLNull(" +7 900 "), "non blank values are stored as given")
}

func TestDeref(t *testing.T) {
	s := "google"
	assert.Equal(t, "google", Deref(&s))
	assert.Equal(t, "", Deref(nil))
}
