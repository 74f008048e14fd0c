package numeral

import "fmt"

// encodeChineseRod writes one rod glyph per decimal digit, most significant
// first. Orientation alternates by place: vertical at the ones, horizontal
// at the tens, and so on. Zero uses its own glyph in either orientation.
func encodeChineseRod(n int) (Notation, []Step) {
	digits := digitsLSF(n)
	symbols := make(Sequence, 0, len(digits))
	steps := make([]Step, 0, len(digits))
	power := 1
	for range len(digits) - 1 {
		power *= 10
	}
	for position := len(digits) - 1; position >= 0; position-- {
		digit := digits[position]
		table, orientation := rodVertical, "vertical"
		if position%2 == 1 {
			table, orientation = rodHorizontal, "horizontal"
		}
		symbol := table[digit]
		if digit == 0 {
			symbol = rodZero
		}
		symbols = append(symbols, symbol)
		steps = append(steps, Step{
			Value:       digit * power,
			Symbol:      symbol,
			Explanation: fmt.Sprintf("%s place: %d (%s)", placeName(position), digit, orientation),
		})
		power /= 10
	}
	return symbols, steps
}

// decodeChineseRod accepts either orientation at any place; orientation is
// checked by the linter, not here.
func decodeChineseRod(in Notation, limit int) (int, *Error) {
	t := tally{limit: limit}
	for _, sym := range in.(Sequence) {
		var digit int
		switch {
		case sym == rodZero:
			digit = 0
		case rodVerticalVals[sym] > 0:
			digit = rodVerticalVals[sym]
		case rodHorizVals[sym] > 0:
			digit = rodHorizVals[sym]
		default:
			return 0, symbolError("Unknown symbol: %s", sym)
		}
		t.shift(10, digit)
	}
	return t.total, nil
}
