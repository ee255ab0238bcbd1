package ast

import (
	"bytes"
	"iter"
	"strconv"
)

// Number is an expression node that holds a numeric literal.
type Number struct {
	Literal string  // the literal text (e.g., "42", "0x2a"); may be empty
	Value   float64 // the parsed value
}

func (x *Number) exprNode() {}

func (x *Number) String() string {
	if x.Literal != "" {
		return x.Literal
	}
	return strconv.FormatFloat(x.Value, 'g', -1, 64)
}

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	Value bool
}

func (x *Bool) exprNode() {}

func (x *Bool) String() string { return strconv.FormatBool(x.Value) }

// Nil is an expression node that holds a nil literal.
type Nil struct{}

func (x *Nil) exprNode() {}

func (x *Nil) String() string { return "nil" }

// Varargs is an expression node that holds the "..." expression.
type Varargs struct{}

func (x *Varargs) exprNode() {}

func (x *Varargs) String() string { return "..." }

// String is an expression node that holds a plain string literal.
type String struct {
	Value string // the unquoted string value
}

func (x *String) exprNode() {}

func (x *String) String() string { return strconv.Quote(x.Value) }

// Segment is one piece of an interpolated string: either a raw text fragment
// or an embedded expression, in source order.
type Segment interface {
	Node
	segmentNode()
}

// TextSegment is a raw text fragment of an interpolated string.
type TextSegment struct {
	Value string // the text fragment, with literal escapes already resolved
}

func (x *TextSegment) segmentNode() {}

func (x *TextSegment) String() string { return x.Value }

// ValueSegment is an embedded expression of an interpolated string, to be
// formatted at runtime.
type ValueSegment struct {
	X Expr // the embedded expression
}

func (x *ValueSegment) segmentNode() {}

func (x *ValueSegment) String() string { return "${" + x.X.String() + "}" }

// InterpolatedString is an expression node that holds an interpolated string
// literal like `x=${value}`. An empty segment list represents the empty
// string.
type InterpolatedString struct {
	Segments []Segment // segments in source order
}

func (x *InterpolatedString) exprNode() {}

// IsEmpty returns true when the string has no segments.
func (x *InterpolatedString) IsEmpty() bool { return len(x.Segments) == 0 }

// IterSegments returns an iterator over the segments in source order. The
// returned sequence can be ranged over multiple times.
func (x *InterpolatedString) IterSegments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, segment := range x.Segments {
			if !yield(segment) {
				return
			}
		}
	}
}

func (x *InterpolatedString) String() string {
	var out bytes.Buffer
	out.WriteString("`")
	for _, segment := range x.Segments {
		out.WriteString(segment.String())
	}
	out.WriteString("`")
	return out.String()
}
