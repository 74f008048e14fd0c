// Package lint checks written numerals without converting them for display.
// It reports input the decoder rejects as errors and decodable but
// non-canonical writing (IIII, leading zero places, misoriented rods) as warnings.
package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue represents a problem found in a notation.
type Issue struct {
	Severity string `json:"severity"` // "error", "warning"
	Rule     string `json:"rule"`
	Symbol   string `json:"symbol,omitempty"`
	Message  string `json:"message"`
}

// Result contains all issues found by the linter.
// Value is set whenever the notation decodes, warnings or not.
type Result struct {
	System    numeral.ID `json:"system"`
	Valid     bool       `json:"valid"`
	Value     *int       `json:"value,omitempty"`
	Canonical string     `json:"canonical,omitempty"`
	Issues    []Issue    `json:"issues"`
}

// Rule names.
const (
	RuleDecode      = "decode"
	RuleCanonical   = "canonical"
	RuleOrder       = "order"
	RuleRepeat      = "repeat"
	RuleLeadingZero = "leading-zero"
	RuleOrientation = "orientation"
)

// Run lints a notation for the given system. It only fails when the system
// is unknown; everything wrong with the notation itself is an Issue.
func Run(id string, in numeral.Notation) (*Result, error) {
	s, ok := numeral.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown system %q", id)
	}
	return Check(s, in), nil
}

// Check lints a notation for a system the caller already resolved.
func Check(s *numeral.System, in numeral.Notation) *Result {
	result := &Result{
		System: s.ID,
		Valid:  true,
		Issues: make([]Issue, 0),
	}

	// 1. Decode
	decoded := s.Decode(in)
	if decoded.Err != nil {
		result.addError(RuleDecode, "", decoded.Err.Message)
		return result
	}
	result.Value = decoded.Value
	canonical := s.Canonical(*decoded.Value)
	result.Canonical = numeral.Line(canonical)
	if numeral.Line(in) == result.Canonical {
		return result
	}

	// 2. System-specific checks
	index := indexGlyphs(s.Glyphs)
	switch s.ID {
	case numeral.Egyptian:
		checkAdditive(result, s, in.(numeral.Sequence))
	case numeral.GreekAttic:
		checkAdditive(result, s, tokenize(string(in.(numeral.Text)), s.Glyphs))
	case numeral.Mayan, numeral.Quipu:
		checkLeadingZero(result, in.(numeral.Sequence), index)
	case numeral.ChineseRod:
		seq := in.(numeral.Sequence)
		checkLeadingZero(result, seq, index)
		checkOrientation(result, seq, index)
	case numeral.Babylonian:
		groups := in.(numeral.Groups)
		if len(groups) > 1 && len(groups[0]) == 0 {
			result.addWarning(RuleLeadingZero, "", "leading empty group adds no value")
		}
	}

	// 3. Fall back to a plain canonical-form warning
	if len(result.Issues) == 0 {
		result.addWarning(RuleCanonical, numeral.Line(in), fmt.Sprintf(
			"non-canonical form; %d is written %s", *decoded.Value, result.Canonical))
	}

	return result
}

// RunText parses a typed line with the system's notation codec and lints it.
func RunText(id, line string) (*Result, error) {
	s, ok := numeral.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown system %q", id)
	}
	in, err := s.ParseNotation(line)
	if err != nil {
		return nil, fmt.Errorf("parse notation: %w", err)
	}
	return Check(s, in), nil
}

func (r *Result) addError(rule, symbol, message string) {
	r.Valid = false
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Rule:     rule,
		Symbol:   symbol,
		Message:  message,
	})
}

func (r *Result) addWarning(rule, symbol, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Rule:     rule,
		Symbol:   symbol,
		Message:  message,
	})
}

// checkAdditive flags glyphs written out of descending order and glyphs
// repeated often enough to be replaced by the next larger glyph. The glyph
// table must be sorted by value, largest first.
func checkAdditive(r *Result, s *numeral.System, symbols []string) {
	index := indexGlyphs(s.Glyphs)
	for i := 1; i < len(symbols); i++ {
		prev, cur := index[symbols[i-1]], index[symbols[i]]
		if cur.Value > prev.Value {
			r.addWarning(RuleOrder, symbols[i], fmt.Sprintf(
				"%s (%d) follows a smaller symbol at position %d", symbols[i], cur.Value, i))
			break
		}
	}

	counts := make(map[string]int, len(s.Glyphs))
	for _, sym := range symbols {
		counts[sym]++
	}
	for i := 1; i < len(s.Glyphs); i++ {
		g, larger := s.Glyphs[i], s.Glyphs[i-1]
		limit := larger.Value/g.Value - 1
		if counts[g.Symbol] > limit {
			r.addWarning(RuleRepeat, g.Symbol, fmt.Sprintf(
				"%s repeated %d times; at most %d before %s",
				g.Symbol, counts[g.Symbol], limit, larger.Symbol))
		}
	}
}

// checkLeadingZero flags zero places in front of the first nonzero place.
func checkLeadingZero(r *Result, seq numeral.Sequence, index map[string]numeral.Glyph) {
	if len(seq) < 2 {
		return
	}
	if g, ok := index[seq[0]]; ok && g.Value == 0 {
		r.addWarning(RuleLeadingZero, seq[0], "leading zero place adds no value")
	}
}

// checkOrientation flags rods laid in the wrong direction for their place:
// vertical at the ones, horizontal at the tens, alternating upward.
func checkOrientation(r *Result, seq numeral.Sequence, index map[string]numeral.Glyph) {
	for i, sym := range seq {
		g := index[sym]
		if g.Value == 0 {
			continue
		}
		pos := len(seq) - 1 - i
		want := "vertical"
		if pos%2 == 1 {
			want = "horizontal"
		}
		if g.Name != want {
			r.addWarning(RuleOrientation, sym, fmt.Sprintf(
				"%s is %s but place %d uses %s rods", sym, g.Name, pos, want))
		}
	}
}

// indexGlyphs maps each symbol to its table entry. The first entry wins
// when a symbol is listed twice.
func indexGlyphs(glyphs []numeral.Glyph) map[string]numeral.Glyph {
	m := make(map[string]numeral.Glyph, len(glyphs))
	for _, g := range glyphs {
		if _, dup := m[g.Symbol]; !dup {
			m[g.Symbol] = g
		}
	}
	return m
}

// tokenize splits text into table symbols, longest match first. Only called
// on text the decoder already accepted.
func tokenize(text string, glyphs []numeral.Glyph) []string {
	ordered := slices.Clone(glyphs)
	slices.SortStableFunc(ordered, func(a, b numeral.Glyph) int {
		return len(b.Symbol) - len(a.Symbol)
	})
	rest := strings.TrimSpace(text)
	var tokens []string
	for rest != "" {
		i := slices.IndexFunc(ordered, func(g numeral.Glyph) bool {
			return strings.HasPrefix(rest, g.Symbol)
		})
		if i < 0 {
			break
		}
		tokens = append(tokens, ordered[i].Symbol)
		rest = rest[len(ordered[i].Symbol):]
	}
	return tokens
}
