package api

import (
	"encoding/json"
	"slices"

	"github.com/jmcpheron/ancient-number-converter/pkg/history"
	"github.com/jmcpheron/ancient-number-converter/pkg/lint"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// Op names an operation.
type Op string

const (
	OpEncode  Op = "encode"
	OpDecode  Op = "decode"
	OpVerify  Op = "verify"
	OpLint    Op = "lint"
	OpSystems Op = "systems"
	OpCompare Op = "compare"
	OpHistory Op = "history"
)

// TargetsSystem reports whether the op works on one named system.
func (o Op) TargetsSystem() bool {
	return o != OpSystems && o != OpCompare
}

// Request is one conversion request.
//
// Input is decoder input: a JSON string in the one-line notation form
// ("MCMXCIX", "• ⠀", "𒁹 | | 𒁹"), an array of symbols for sequence
// systems, or an array of arrays for grouped systems.
type Request struct {
	Op     Op              `json:"op" validate:"required,oneof=encode decode verify lint systems compare history"`
	System string          `json:"system,omitempty" validate:"system_for_op"`
	Number *int            `json:"number,omitempty" validate:"required_if=Op encode,required_if=Op verify,required_if=Op compare"`
	Input  json.RawMessage `json:"input,omitempty" validate:"required_if=Op decode,required_if=Op lint"`
}

// Response carries the outcome of exactly one operation. Error is set when
// the request itself was unusable; conversion failures stay inside the
// operation's own result.
type Response struct {
	Op           Op                    `json:"op"`
	Systems      []*numeral.System     `json:"systems,omitempty"`
	Encoded      *numeral.Result       `json:"encoded,omitempty"`
	Display      string                `json:"display,omitempty"`
	Decoded      *numeral.Decoded      `json:"decoded,omitempty"`
	Verification *numeral.Verification `json:"verification,omitempty"`
	Lint         *lint.Result          `json:"lint,omitempty"`
	Comparison   []Comparison          `json:"comparison,omitempty"`
	History      *history.Entry        `json:"history,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// Failed reports whether the request or the operation failed.
func (r Response) Failed() bool {
	switch {
	case r.Error != "":
		return true
	case r.Encoded != nil:
		return !r.Encoded.OK()
	case r.Decoded != nil:
		return r.Decoded.Err != nil
	case r.Verification != nil:
		return !r.Verification.Passed
	case r.Lint != nil:
		return !r.Lint.Valid
	case r.Comparison != nil:
		return !slices.ContainsFunc(r.Comparison, func(c Comparison) bool { return c.Encoded.OK() })
	}
	return false
}

// Comparison is one system's rendering of a compared number.
type Comparison struct {
	System       numeral.ID           `json:"system"`
	Name         string               `json:"name"`
	Encoded      numeral.Result       `json:"encoded"`
	Display      string               `json:"display,omitempty"`
	Verification numeral.Verification `json:"verification"`
}
