package numeral

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// encodeRoman matches greedily against the table, subtractive pairs included.
func encodeRoman(n int) (Notation, []Step) {
	var sb strings.Builder
	var steps []Step
	for _, g := range romanGlyphs {
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
			Explanation: fmt.Sprintf("%s × %d → %s", group(g.Value), count, run),
		})
	}
	return Text(sb.String()), steps
}

// decodeRoman is case-insensitive. A letter followed by a strictly larger
// letter is subtracted, every other letter is added.
func decodeRoman(in Notation, limit int) (int, *Error) {
	// A Caser keeps state, so each call gets its own.
	upper := cases.Upper(language.Und)
	letters := []rune(upper.String(strings.TrimSpace(string(in.(Text)))))
	for _, r := range letters {
		if _, ok := romanLetters[r]; !ok {
			return 0, symbolError("Invalid character %q. Use only M, D, C, L, X, V, I", string(r))
		}
	}

	t := tally{limit: limit}
	for i, r := range letters {
		current := romanLetters[r]
		if i+1 < len(letters) && current < romanLetters[letters[i+1]] {
			t.sub(current)
		} else {
			t.add(current)
		}
	}
	return t.total, nil
}
