package extract

import "fmt"

// Shape is the top-level JSON kind a caller expects back.
type Shape int

const (
	ShapeObject Shape = iota + 1
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeList:
		return "list"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

func (s Shape) open() byte {
	if s == ShapeList {
		return '['
	}
	return '{'
}

func (s Shape) close() byte {
	if s == ShapeList {
		return ']'
	}
	return '}'
}

// Attempt records one run of the extraction pipeline over a piece of model text.
type Attempt struct {
	Raw        string
	Cleaned    string
	Transforms []string // cleanup stages that changed the text, in order
	Stage      string   // parse stage that produced Value: "strict", "span" or "greedy"
	Value      any
	Err        error
}

// OK reports whether the attempt produced a value.
func (a Attempt) OK() bool {
	return a.Err == nil
}
