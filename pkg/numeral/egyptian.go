package numeral

import (
	"fmt"
	"strings"
)

// encodeEgyptian repeats each power-of-ten hieroglyph as often as it fits,
// largest first. One step per glyph run.
func encodeEgyptian(n int) (Notation, []Step) {
	var symbols Sequence
	var steps []Step
	for _, g := range egyptianGlyphs {
		count := n / g.Value
		if count == 0 {
			continue
		}
		n -= count * g.Value
		for range count {
			symbols = append(symbols, g.Symbol)
		}
		explanation := fmt.Sprintf("%s = %s", g.Name, group(g.Value))
		if count > 1 {
			explanation = fmt.Sprintf("%d %ss = %s", count, g.Name, group(g.Value*count))
		}
		steps = append(steps, Step{
			Value:       g.Value * count,
			Symbol:      strings.Repeat(g.Symbol, count),
			Explanation: explanation,
		})
	}
	return symbols, steps
}

// decodeEgyptian sums every glyph regardless of order.
func decodeEgyptian(in Notation, limit int) (int, *Error) {
	t := tally{limit: limit}
	for _, sym := range in.(Sequence) {
		v, ok := egyptianValues[sym]
		if !ok {
			return 0, symbolError("Unknown symbol: %s", sym)
		}
		t.add(v)
	}
	return t.total, nil
}
