package numeral

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// encodeGreekAttic matches greedily against the acrophonic table, the
// five-multiple ligatures included.
func encodeGreekAttic(n int) (Notation, []Step) {
	var sb strings.Builder
	var steps []Step
	for _, g := range atticGlyphs {
		count := n / g.Value
		if count == 0 {
			continue
		}
		n -= count * g.Value
		run := strings.Repeat(g.Symbol, count)
		sb.WriteString(run)
		steps = append(steps, Step{
			Value:       g.Value * count,
			Symbol:      run,
			Explanation: fmt.Sprintf("%s × %d → %s (%s)", group(g.Value), count, run, g.Name),
		})
	}
	return Text(sb.String()), steps
}

// decodeGreekAttic tokenizes left to right, longest token first.
func decodeGreekAttic(in Notation, limit int) (int, *Error) {
	rest := strings.TrimSpace(string(in.(Text)))
	t := tally{limit: limit}
	for rest != "" {
		g, ok := matchAttic(rest)
		if !ok {
			r, _ := utf8.DecodeRuneInString(rest)
			return 0, symbolError("Unknown symbol at: %q", string(r))
		}
		t.add(g.Value)
		rest = rest[len(g.Symbol):]
	}
	return t.total, nil
}

func matchAttic(s string) (Glyph, bool) {
	for _, g := range atticTokens {
		if strings.HasPrefix(s, g.Symbol) {
			return g, true
		}
	}
	return Glyph{}, false
}
