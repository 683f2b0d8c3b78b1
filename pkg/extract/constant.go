package extract

import "regexp"

// Transform names recorded on Attempt.Transforms.
const (
	TransformTrim         = "trim"
	TransformAnswerMarker = "answer_marker"
	TransformCodeFence    = "code_fence"
	TransformSmartQuotes  = "smart_quotes"
	TransformDecorative   = "decorative_runes"
)

// Parse stages recorded on Attempt.Stage.
const (
	StageStrict = "strict"
	StageSpan   = "span"
	StageGreedy = "greedy"
)

// maxSpanCandidates bounds the bracket search on very noisy text.
const maxSpanCandidates = 256

var (
	// Marker lines such as "Final Answer:" or "**Answer:**" that precede the payload.
	answerMarkerRe = regexp.MustCompile(`(?im)^[ \t>*#_]*(?:final[ \t]+answer|answer|output|result|response)[ \t]*\**[ \t]*:`)

	// Opening or closing fence, optionally language tagged.
	codeFenceRe = regexp.MustCompile("(?:```|~~~)[A-Za-z0-9_+.-]*")
)
