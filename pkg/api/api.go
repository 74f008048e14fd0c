// Package api is the request/response boundary over the numeral engine.
// It is shared by the CLI, the HTTP service and the browser bindings so all
// three accept and return the same JSON.
package api

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jmcpheron/ancient-number-converter/pkg/history"
	"github.com/jmcpheron/ancient-number-converter/pkg/lint"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// validate is the validator instance for requests.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("system_for_op", validateSystemForOp)
}

// validateSystemForOp requires a system for every op that targets one.
func validateSystemForOp(fl validator.FieldLevel) bool {
	op := Op(fl.Parent().FieldByName("Op").String())
	return !op.TargetsSystem() || fl.Field().String() != ""
}

// Validate checks the request fields against their tags.
func (r Request) Validate() error {
	return validate.Struct(r)
}

// Run decodes a JSON request, handles it and returns the JSON response.
// Only malformed JSON is a Go error; everything else is reported in the
// response.
func Run(jsonText string) (string, error) {
	// 1. Unmarshal
	var req Request
	if err := json.Unmarshal([]byte(jsonText), &req); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}

	// 2. Handle
	resp := Handle(req)

	// 3. Marshal
	out, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	return string(out), nil
}

// Handle executes one request.
func Handle(req Request) Response {
	resp := Response{Op: req.Op}
	if err := req.Validate(); err != nil {
		resp.Error = fmt.Sprintf("invalid request: %v", err)
		return resp
	}

	switch req.Op {
	case OpSystems:
		resp.Systems = numeral.Systems()
		return resp
	case OpCompare:
		resp.Comparison = Compare(*req.Number)
		return resp
	}

	s, ok := numeral.Lookup(req.System)
	if !ok {
		if req.Op == OpVerify {
			v := numeral.VerifyRoundTrip(req.System, *req.Number)
			resp.Verification = &v
			return resp
		}
		resp.Error = fmt.Sprintf("%s: %q", numeral.ErrUnknownSystem, req.System)
		return resp
	}

	switch req.Op {
	case OpEncode:
		res := s.Encode(*req.Number)
		resp.Encoded = &res
		resp.Display = s.Format(res.Symbols)

	case OpVerify:
		v := s.Verify(*req.Number)
		resp.Verification = &v

	case OpHistory:
		e, ok := history.For(s.ID)
		if !ok {
			resp.Error = fmt.Sprintf("no history for %s", s.Name)
			return resp
		}
		resp.History = &e

	case OpDecode, OpLint:
		in, err := ParseInput(s, req.Input)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		if req.Op == OpLint {
			resp.Lint = lint.Check(s, in)
			return resp
		}
		d := s.Decode(in)
		resp.Decoded = &d
	}

	return resp
}

// Compare encodes and verifies n in every system, in registry order. Systems
// whose range excludes n carry the range error in their result.
func Compare(n int) []Comparison {
	systems := numeral.Systems()
	out := make([]Comparison, len(systems))
	for i, s := range systems {
		c := Comparison{
			System:       s.ID,
			Name:         s.Name,
			Encoded:      s.Encode(n),
			Verification: s.Verify(n),
		}
		if c.Encoded.OK() {
			c.Display = s.Format(c.Encoded.Symbols)
		}
		out[i] = c
	}
	return out
}

// ParseInput resolves raw JSON decoder input against the system's shape.
// A JSON string always goes through the system's notation codec.
func ParseInput(s *numeral.System, raw json.RawMessage) (numeral.Notation, error) {
	var line string
	if err := json.Unmarshal(raw, &line); err == nil {
		return s.ParseNotation(line)
	}

	switch s.Shape {
	case numeral.ShapeSequence:
		var seq []string
		if err := json.Unmarshal(raw, &seq); err != nil {
			return nil, fmt.Errorf("%s input must be a string or an array of symbols", s.Name)
		}
		return numeral.Sequence(seq), nil
	case numeral.ShapeGroups:
		var groups [][]string
		if err := json.Unmarshal(raw, &groups); err != nil {
			return nil, fmt.Errorf("%s input must be a string or an array of symbol groups", s.Name)
		}
		return numeral.Groups(groups), nil
	default:
		return nil, fmt.Errorf("%s input must be a string", s.Name)
	}
}
