package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT\t*\nFROM\r\tleads WHERE  a =  1", "SELECT * FROM leads WHERE a = 1"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Args      []any   `json:"args"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func decodeLine(t *testing.T, buf *bytes.Buffer) logLine {
	t.Helper()
	var line logLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal log: %v\nraw=%s", err, buf.String())
	}
	return line
}

func TestTracer_InfoAndWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	// root level above info must not hide sql lines
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel), "sqlite")

	ev := QueryEvent{
		SQL:       "select  count(*)\n from leads",
		Args:      []any{1, "two"},
		ElapsedUS: 12345,
		Err:       errors.New("boom"),
	}
	tr.OnQuery(context.Background(), ev)

	line := decodeLine(t, &buf)
	if line.Level != "info" {
		t.Fatalf("expected level=info, got %q", line.Level)
	}
	if math.Abs(line.ElapsedMS-12.345) > 0.0005 {
		t.Fatalf("elapsed_ms mismatch: %v", line.ElapsedMS)
	}
	if line.SQL != "select count(*) from leads" {
		t.Fatalf("sql not compacted: %q", line.SQL)
	}
	if len(line.Args) != 2 || line.Args[1] != "two" {
		t.Fatalf("args unexpected: %#v", line.Args)
	}
	if line.Error != "boom" || line.Message != "sqlite query" || line.Component != "sqlite" {
		t.Fatalf("unexpected line: %+v", line)
	}

	buf.Reset()
	ev.Slow = true
	tr.OnQuery(context.Background(), ev)
	line = decodeLine(t, &buf)
	if line.Level != "warn" || !line.Slow {
		t.Fatalf("expected slow warn line, got %+v", line)
	}
}

type recorder struct{ events []QueryEvent }

func (r *recorder) OnQuery(_ context.Context, ev QueryEvent) { r.events = append(r.events, ev) }

func TestEmitter(t *testing.T) {
	t.Parallel()

	// nil tracer is a no op
	Emitter{}.Emit(context.Background(), "select 1", nil, time.Now(), nil)

	rec := &recorder{}
	Emitter{Tracer: rec, SlowMs: 0}.Emit(context.Background(), "select 1", []any{1}, time.Now(), nil)
	Emitter{Tracer: rec, SlowMs: 60_000}.Emit(context.Background(), "select 2", nil, time.Now(), nil)
	Emitter{Tracer: rec, SlowMs: -1}.Emit(context.Background(), "select 3", nil, time.Now().Add(-time.Hour), nil)

	if len(rec.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(rec.events))
	}
	if !rec.events[0].Slow {
		t.Fatalf("zero threshold marks everything slow")
	}
	if rec.events[1].Slow {
		t.Fatalf("fast query flagged slow")
	}
	if rec.events[2].Slow {
		t.Fatalf("negative threshold disables slow flag")
	}
	if rec.events[2].ElapsedUS < time.Hour.Microseconds() {
		t.Fatalf("elapsed not measured from start: %d", rec.events[2].ElapsedUS)
	}
}
