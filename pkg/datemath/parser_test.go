package datemath_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"event-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Karachi"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	june13 := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", expr: "today", want: startOfBase},
		{name: "Tomorrow", expr: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", expr: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Day after tomorrow", expr: "day after tomorrow", want: startOfBase.AddDate(0, 0, 2)},
		{name: "In 3 days", expr: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", expr: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", expr: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", expr: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", expr: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Bare weekday", expr: "Friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "ISO date", expr: "2025-06-13", want: june13},
		{name: "RFC3339", expr: "2025-06-13T18:00:00Z", want: june13},
		{name: "Long form", expr: "June 13, 2025", want: june13},
		{name: "Ordinal", expr: "13th June 2025", want: june13},
		{name: "Short month", expr: "Jun 13 2025", want: june13},
		{name: "Invalid duration pattern", expr: "in a few days", wantErr: true},
		{name: "Invalid next weekday", expr: "next funday", wantErr: true},
		{name: "Unknown", expr: "some random day", wantErr: true},
		{name: "Empty", expr: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Fatalf("Parse(%q) expected ErrUnrecognized, got %v", tt.expr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParse_UsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Karachi")
	// 21:00 UTC on May 1 is already May 2 in Karachi (UTC+5)
	base := time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)

	got, err := parser.Normalize("today", base)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-05-02" {
		t.Errorf("Normalize(today) = %s, want 2024-05-02", got)
	}
}

func TestSpanFrom(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	span, err := parser.SpanFrom("2025-06-13", 3, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2025-06-13", "2025-06-14", "2025-06-15"}
	if got := span.Dates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
	if span.End().Format(datemath.DateLayout) != "2025-06-15" {
		t.Errorf("End() = %v", span.End())
	}

	if _, err := parser.SpanFrom("2025-06-13", 0, time.Now()); err == nil {
		t.Error("expected error for empty span")
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	if got := parser.EndOfDay(base); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
