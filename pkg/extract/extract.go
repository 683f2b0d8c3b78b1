package extract

import (
	"encoding/json"
	"fmt"
)

// Extract turns free-form model text into a JSON value of the expected shape.
// Objects come back as map[string]any and lists as []any. Every failure matches
// ErrMalformedOutput.
func Extract(raw string, shape Shape) (any, error) {
	a := Run(raw, shape)
	return a.Value, a.Err
}

// Into extracts a value of the given shape and decodes it into dst.
func Into(raw string, shape Shape, dst any) error {
	a := Run(raw, shape)
	if a.Err != nil {
		return a.Err
	}
	b, err := json.Marshal(a.Value)
	if err != nil {
		return malformed(shape, a.Cleaned, "re-encode: %v", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return malformed(shape, a.Cleaned, "decode into %T: %v", dst, err)
	}
	return nil
}

// Run executes the full pipeline and reports how the value was obtained.
func Run(raw string, shape Shape) (a Attempt) {
	a.Raw = raw
	defer func() {
		if r := recover(); r != nil {
			a.Value = nil
			a.Stage = ""
			a.Err = malformed(shape, a.Cleaned, "extractor panic: %v", r)
		}
	}()

	if shape != ShapeObject && shape != ShapeList {
		a.Err = malformed(shape, "", "unknown shape")
		return a
	}

	a.Cleaned, a.Transforms = clean(raw)
	if a.Cleaned == "" {
		a.Err = malformed(shape, a.Cleaned, "empty text")
		return a
	}

	v, err := parseStrict(a.Cleaned)
	if err == nil {
		if !matches(v, shape) {
			a.Err = malformed(shape, a.Cleaned, "got %s", kindOf(v))
			return a
		}
		a.Value, a.Stage = v, StageStrict
		return a
	}

	v, skipped, ok := findSpan(a.Cleaned, shape)
	if ok {
		a.Value, a.Stage = v, StageSpan
		return a
	}
	if v, ok := greedySpan(a.Cleaned, shape, skipped); ok {
		a.Value, a.Stage = v, StageGreedy
		return a
	}

	a.Err = malformed(shape, a.Cleaned, "no parseable %s found: %v", shape, err)
	return a
}

func parseStrict(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func matches(v any, shape Shape) bool {
	switch v.(type) {
	case map[string]any:
		return shape == ShapeObject
	case []any:
		return shape == ShapeList
	}
	return false
}

func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

// span is a half-open byte range [start, end) of the cleaned text.
type span struct{ start, end int }

func (s span) contains(i int) bool { return i >= s.start && i < s.end }

// findSpan walks the text for balanced bracket spans. Spans of the expected shape are parsed
// in order of appearance; a complete, valid span of the other shape is skipped whole so a
// list nested in an object is never returned when a list was asked for. The skipped ranges
// are returned for the greedy stage.
func findSpan(text string, shape Shape) (any, []span, bool) {
	var skipped []span
	tried := 0
	for i := 0; i < len(text) && tried < maxSpanCandidates; i++ {
		c := text[i]
		if c != '{' && c != '[' {
			continue
		}
		end := balancedEnd(text, i)
		if end < 0 {
			continue
		}
		tried++
		candidate := text[i : end+1]
		v, err := parseStrict(candidate)
		if c == shape.open() {
			if err == nil && matches(v, shape) {
				return v, skipped, true
			}
			continue
		}
		if err == nil {
			skipped = append(skipped, span{start: i, end: end + 1})
			i = end
		}
	}
	return nil, skipped, false
}

// balancedEnd returns the index closing the bracket opened at start, honouring JSON
// string literals, or -1.
func balancedEnd(text string, start int) int {
	stack := make([]byte, 0, 8)
	inString, escaped := false, false
	for j := start; j < len(text); j++ {
		c := text[j]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j
			}
		}
	}
	return -1
}

// greedySpan tries the widest first-open to last-close span, which survives stray
// brackets inside prose that defeat the balanced scan. Brackets inside a skipped span of
// the other shape are not candidates, so the greedy stage cannot pull a list out of an
// object either.
func greedySpan(text string, shape Shape, skipped []span) (any, bool) {
	inSkipped := func(i int) bool {
		for _, s := range skipped {
			if s.contains(i) {
				return true
			}
		}
		return false
	}

	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == shape.open() && !inSkipped(i) {
			start = i
			break
		}
	}
	end := -1
	for i := len(text) - 1; i > start; i-- {
		if text[i] == shape.close() && !inSkipped(i) {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return nil, false
	}
	v, err := parseStrict(text[start : end+1])
	if err != nil || !matches(v, shape) {
		return nil, false
	}
	return v, true
}
