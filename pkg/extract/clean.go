package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	smartDoubles = "“”„‟″«»"
	smartSingles = "‘’‚‛′"
)

// cleanStage is one text transform of the pipeline.
type cleanStage struct {
	name string
	fn   func(string) string
}

var cleanStages = []cleanStage{
	{TransformTrim, strings.TrimSpace},
	{TransformAnswerMarker, stripAnswerMarker},
	{TransformCodeFence, stripCodeFences},
	{TransformSmartQuotes, normalizeQuotes},
	{TransformDecorative, stripDecorative},
}

// clean runs every stage and returns the result plus the names of the stages that changed it.
func clean(raw string) (string, []string) {
	text := raw
	var applied []string
	for _, st := range cleanStages {
		next := st.fn(text)
		if next != text {
			applied = append(applied, st.name)
			text = next
		}
	}
	return strings.TrimSpace(text), applied
}

// stripAnswerMarker drops everything up to the last marker line that sits before the payload.
func stripAnswerMarker(text string) string {
	locs := answerMarkerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	payloadAt := strings.IndexAny(text, "[{")
	cut := -1
	for _, loc := range locs {
		if payloadAt >= 0 && loc[0] > payloadAt {
			break
		}
		cut = loc[1]
	}
	if cut < 0 {
		return text
	}
	rest := strings.TrimLeft(text[cut:], "* \t")
	return strings.TrimSpace(rest)
}

func stripCodeFences(text string) string {
	if !strings.Contains(text, "```") && !strings.Contains(text, "~~~") {
		return text
	}
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
}

// normalizeQuotes rewrites typographic quotes to ASCII where they act as JSON syntax.
// Inside a string delimited by ASCII quotes they are content and are kept, so an already
// valid payload like {"theme": "A “Mughal” evening"} passes through untouched.
func normalizeQuotes(text string) string {
	if !strings.ContainsAny(text, smartDoubles+smartSingles) {
		return text
	}

	const (
		outside = iota
		asciiString
		smartString
	)
	state, escaped := outside, false

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if state == asciiString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				state = outside
			}
			b.WriteRune(r)
			continue
		}

		switch {
		case strings.ContainsRune(smartSingles, r):
			r = '\''
		case strings.ContainsRune(smartDoubles, r):
			// a typographic quote opens or closes a string the backend mistyped
			if state == outside {
				state = smartString
			} else {
				state = outside
			}
			r = '"'
		case r == '"':
			if state == outside {
				state = asciiString
			} else {
				state = outside
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decorative reports runes that never belong to a JSON payload the backend meant to send:
// emoji and pictographs, dingbats, variation selectors, zero-width and bidi controls, BOM.
// Ordinary symbols such as °, ©, ™ and currency signs are kept.
func decorative(r rune) bool {
	if r < 0x80 {
		return false
	}
	switch {
	case unicode.Is(unicode.Cf, r), unicode.Is(unicode.Co, r):
		return true
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji, pictographs, regional indicators
		return true
	case r >= 0x2600 && r <= 0x27BF: // miscellaneous symbols, dingbats
		return true
	case r >= 0x2B50 && r <= 0x2B55, r == 0x231A, r == 0x231B, r >= 0x23E9 && r <= 0x23FA:
		return true
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0xE0100 && r <= 0xE01EF:
		return true
	case r >= 0x20D0 && r <= 0x20FF: // combining marks for symbols, keycap
		return true
	}
	return false
}

// unicodeSpace maps NBSP and the other exotic separators to a plain space.
func unicodeSpace(r rune) rune {
	if r >= 0x80 && unicode.Is(unicode.Zs, r) {
		return ' '
	}
	if r == '\u2028' || r == '\u2029' {
		return '\n'
	}
	return r
}

func stripDecorative(text string) string {
	t := transform.Chain(runes.Remove(runes.Predicate(decorative)), runes.Map(unicodeSpace))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
