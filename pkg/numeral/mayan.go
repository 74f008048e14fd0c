package numeral

import "fmt"

// encodeMayan emits base-20 digits least significant first. The step trace is
// most significant first; 0 yields a single shell glyph and no steps.
func encodeMayan(n int) (Notation, []Step) {
	var symbols Sequence
	var steps []Step
	power := 1
	for position := 0; n > 0 || len(symbols) == 0; position++ {
		digit := n % 20
		symbols = append(symbols, mayanDigits[digit])
		if n > 0 {
			steps = append(steps, Step{
				Value:       digit * power,
				Symbol:      mayanDigits[digit],
				Explanation: fmt.Sprintf("Position %d (×%s): %d → %s", position, group(power), digit, mayanDigits[digit]),
			})
		}
		n /= 20
		power *= 20
	}
	return symbols, reverseSteps(steps)
}

// decodeMayan reads positions most significant first.
func decodeMayan(in Notation, limit int) (int, *Error) {
	seq := in.(Sequence)
	t := tally{limit: limit}
	for i, sym := range seq {
		digit, ok := mayanValues[sym]
		if !ok {
			return 0, symbolError("Unknown symbol at position %d", i)
		}
		t.shift(20, digit)
	}
	return t.total, nil
}

func reverseSteps(steps []Step) []Step {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// tally accumulates a decoded value. Once the running total passes limit it
// stays pinned at limit+1, so arbitrarily long input cannot overflow.
type tally struct {
	total int
	limit int
}

func (t *tally) add(v int) {
	t.total = min(t.total+v, t.limit+1)
}

func (t *tally) shift(base, digit int) {
	t.total = min(t.total*base+digit, t.limit+1)
}

// sub is ignored once pinned; a pinned total can only end above limit.
func (t *tally) sub(v int) {
	if t.total <= t.limit {
		t.total -= v
	}
}
