package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	ordinalRe    = regexp.MustCompile(`(\d)(st|nd|rd|th)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Karachi"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an absolute or relative date expression to the start of that day.
// The baseTime is used as the reference point for relative forms (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	raw := strings.TrimSpace(expr)
	if raw == "" {
		return time.Time{}, ErrUnrecognized
	}

	if t, ok := p.parseAbsolute(raw); ok {
		return t, nil
	}

	relative := strings.ToLower(raw)
	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if strings.HasPrefix(relative, "next ") || strings.HasPrefix(relative, "this ") {
		return p.parseNextWeekday(relative, baseTime)
	}
	if _, ok := weekdays[relative]; ok {
		return p.parseNextWeekday("next "+relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

// Normalize parses expr and formats it as YYYY-MM-DD.
func (p *Parser) Normalize(expr string, baseTime time.Time) (string, error) {
	t, err := p.Parse(expr, baseTime)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// SpanFrom builds the span of days consecutive days starting at the day expr names.
func (p *Parser) SpanFrom(expr string, days int, baseTime time.Time) (Span, error) {
	if days <= 0 {
		return Span{}, fmt.Errorf("datemath: span length must be positive, got %d", days)
	}
	start, err := p.Parse(expr, baseTime)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: start, Days: days}, nil
}

func (p *Parser) parseAbsolute(raw string) (time.Time, bool) {
	cleaned := ordinalRe.ReplaceAllString(raw, "$1")
	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, cleaned, p.location)
		if err != nil {
			continue
		}
		if layout == time.RFC3339 {
			t = t.In(p.location)
		}
		return p.startOfDay(t), true
	}
	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "this friday".
// The result is always strictly after baseTime's day.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(strings.TrimPrefix(relative, "next "), "this ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := p.startOfDay(baseTime)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return base.AddDate(0, 0, daysUntil), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
