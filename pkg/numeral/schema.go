// Package numeral converts decimal integers to and from seven historical
// numeral notations: Mayan, Egyptian, Babylonian, Roman, Chinese Rod,
// Greek Attic and Quipu.
//
// Every conversion is a pure function. Encoders return a Result carrying the
// symbols plus a step-by-step breakdown; decoders return a Decoded value.
// Failures are data (an *Error on the result), never panics.
package numeral

import (
	"encoding/json"
	"fmt"
)

// ID identifies a numeral system.
type ID string

const (
	Mayan      ID = "mayan"
	Egyptian   ID = "egyptian"
	Babylonian ID = "babylonian"
	Roman      ID = "roman"
	ChineseRod ID = "chineseRod"
	GreekAttic ID = "greekAttic"
	Quipu      ID = "quipu"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// String renders the range with grouped digits, e.g. "1–3,999".
func (r Range) String() string {
	return group(r.Min) + "–" + group(r.Max)
}

// Structure describes how place value is expressed.
type Structure string

const (
	Positional Structure = "positional" // one digit glyph per place
	Grouped    Structure = "grouped"    // one additive group per place
	Additive   Structure = "additive"   // no place value at all
)

// Shape is the fixed form of a system's notation.
type Shape string

const (
	ShapeText     Shape = "text"     // a single composed string
	ShapeSequence Shape = "sequence" // one display unit per element
	ShapeGroups   Shape = "groups"   // one group of glyphs per place
)

// Order is the order in which an encoder emits a sequence.
type Order string

const (
	MostSignificantFirst  Order = "msf"
	LeastSignificantFirst Order = "lsf"
)

// RenderMode is a hint for UI layers.
type RenderMode string

const (
	RenderVertical   RenderMode = "vertical"
	RenderHorizontal RenderMode = "horizontal"
	RenderGrouped    RenderMode = "grouped"
	RenderText       RenderMode = "text"
	RenderCord       RenderMode = "cord"
)

// Glyph is one symbol table entry exposed for UI consumption.
type Glyph struct {
	Value  int    `json:"value"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
}

// Step is one line of the pedagogical breakdown of an encoding.
type Step struct {
	Value       int    `json:"value"`       // place-value contribution
	Symbol      string `json:"symbol"`      // glyph(s) for this place or run
	Explanation string `json:"explanation"` // human-readable description
}

// Result is the output of an encoder.
// Err is set (and Symbols nil) when the input was outside the system's range.
type Result struct {
	System  ID       `json:"system"`
	Number  int      `json:"number"`
	Symbols Notation `json:"symbols,omitempty"`
	Steps   []Step   `json:"steps"`
	Err     *Error   `json:"error,omitempty"`
}

// OK reports whether the encoding succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// UnmarshalJSON reads a Result back from its JSON form. The concrete
// Notation type follows from the system's shape.
func (r *Result) UnmarshalJSON(data []byte) error {
	type plain Result
	var wire struct {
		plain
		Symbols json.RawMessage `json:"symbols,omitempty"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = Result(wire.plain)
	if len(wire.Symbols) == 0 || string(wire.Symbols) == "null" {
		return nil
	}

	s, ok := byID[r.System]
	if !ok {
		return fmt.Errorf("unmarshal result: unknown system %q", r.System)
	}
	symbols, err := unmarshalNotation(s.Shape, wire.Symbols)
	if err != nil {
		return fmt.Errorf("unmarshal %s symbols: %w", r.System, err)
	}
	r.Symbols = symbols
	return nil
}

func unmarshalNotation(shape Shape, data []byte) (Notation, error) {
	switch shape {
	case ShapeText:
		var v Text
		err := json.Unmarshal(data, &v)
		return v, err
	case ShapeSequence:
		var v Sequence
		err := json.Unmarshal(data, &v)
		return v, err
	case ShapeGroups:
		var v Groups
		err := json.Unmarshal(data, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unsupported shape %q", shape)
	}
}

// Total sums the step contributions. For a successful encoding it equals Number.
func (r Result) Total() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Value
	}
	return total
}

// Decoded is the output of a decoder: exactly one of Value or Err is set.
type Decoded struct {
	Value *int   `json:"value"`
	Err   *Error `json:"error"`
}

// Int returns the decoded value, or the decode error.
func (d Decoded) Int() (int, error) {
	if d.Err != nil {
		return 0, d.Err
	}
	return *d.Value, nil
}

func decodedValue(n int) Decoded {
	return Decoded{Value: &n}
}

func decodedError(err *Error) Decoded {
	return Decoded{Err: err}
}

// ErrorKind classifies conversion failures.
type ErrorKind string

const (
	// KindRange covers inputs or decoded results outside a system's domain.
	KindRange ErrorKind = "range"
	// KindSymbol covers unknown glyphs, malformed groups and knot-rule violations.
	KindSymbol ErrorKind = "symbol"
)

// Error is a conversion failure meant to be shown to the user verbatim.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func rangeError(format string, args ...any) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...)}
}

func symbolError(format string, args ...any) *Error {
	return &Error{Kind: KindSymbol, Message: fmt.Sprintf(format, args...)}
}

// Verification is the outcome of a round-trip check.
type Verification struct {
	Passed   bool   `json:"passed"`
	Original int    `json:"original"`
	Parsed   *int   `json:"parsed"`
	Error    string `json:"error,omitempty"`
}
