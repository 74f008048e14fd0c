package numeral

import (
	"fmt"
	"strings"
)

// encodeQuipu ties one knot cluster per decimal place, ones first. The ones
// place uses a figure-eight for 1 and long knots for 2-9; higher places use
// simple knots. Steps are most significant first.
func encodeQuipu(n int) (Notation, []Step) {
	digits := digitsLSF(n)
	symbols := make(Sequence, 0, len(digits))
	steps := make([]Step, 0, len(digits))
	power := 1
	for pos, digit := range digits {
		symbol, desc := quipuCluster(pos, digit)
		symbols = append(symbols, symbol)
		steps = append(steps, Step{
			Value:       digit * power,
			Symbol:      symbol,
			Explanation: fmt.Sprintf("%s: %s = %s", placeName(pos), desc, group(digit*power)),
		})
		power *= 10
	}
	return symbols, reverseSteps(steps)
}

func quipuCluster(pos, digit int) (symbol, desc string) {
	switch {
	case digit == 0:
		return knotZero, "no knots (zero)"
	case pos == 0 && digit == 1:
		return knotFigureEight, "figure-eight knot"
	case pos == 0:
		return strings.Repeat(knotLong, digit), fmt.Sprintf("%d-turn long knot", digit)
	case digit == 1:
		return knotSimple, "1 simple knot"
	default:
		return strings.Repeat(knotSimple, digit), fmt.Sprintf("%d simple knots", digit)
	}
}

// decodeQuipu reads places most significant first and enforces which knot
// family may appear at each place.
func decodeQuipu(in Notation, limit int) (int, *Error) {
	seq := in.(Sequence)
	t := tally{limit: limit}
	for i, sym := range seq {
		pos := len(seq) - 1 - i
		digit, ok := quipuDigits[sym]
		if !ok {
			return 0, symbolError("Unknown symbol at position %d", i)
		}
		switch {
		case pos == 0 && digit == 1 && sym != knotFigureEight:
			return 0, symbolError("Ones place value of 1 must use figure-eight knot (∞), not simple knot")
		case pos == 0 && digit >= 2 && !strings.HasPrefix(sym, knotLong):
			return 0, symbolError("Ones place values 2–9 must use long knots (◎)")
		case pos > 0 && digit >= 1 && !strings.HasPrefix(sym, knotSimple):
			return 0, symbolError("Higher places must use simple knots (●)")
		}
		t.shift(10, digit)
	}
	return t.total, nil
}
