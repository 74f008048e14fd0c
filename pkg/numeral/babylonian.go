package numeral

import (
	"fmt"
	"strings"
)

const babylonianPlaces = 4

// encodeBabylonian writes up to four sexagesimal places, each as ten wedges
// followed by unit wedges. Leading empty places are dropped; once a place has
// been written, empty places are kept so the rest keep their weight.
func encodeBabylonian(n int) (Notation, []Step) {
	groups := Groups{}
	var steps []Step
	power := 1
	for range babylonianPlaces - 1 {
		power *= 60
	}
	for position := babylonianPlaces - 1; position >= 0; position-- {
		quotient := n / power
		n %= power
		if quotient > 0 || len(groups) > 0 {
			g := babylonianGroup(quotient)
			groups = append(groups, g)
			if quotient > 0 {
				symbol := strings.Join(g, "")
				steps = append(steps, Step{
					Value:       quotient * power,
					Symbol:      symbol,
					Explanation: fmt.Sprintf("Position %d (×%s): %d → %s", position, group(power), quotient, symbol),
				})
			}
		}
		power /= 60
	}
	return groups, steps
}

// babylonianGroup renders 0-59 additively; zero is an empty, non-nil group.
func babylonianGroup(q int) []string {
	g := make([]string, 0, q/10+q%10)
	for range q / 10 {
		g = append(g, babylonianTen)
	}
	for range q % 10 {
		g = append(g, babylonianUnit)
	}
	return g
}

// decodeBabylonian reads groups most significant first. A group worth more
// than 59 cannot come from the encoder but can be assembled by hand.
func decodeBabylonian(in Notation, limit int) (int, *Error) {
	t := tally{limit: limit}
	for _, g := range in.(Groups) {
		value := 0
		for _, sym := range g {
			v, ok := babylonianValues[sym]
			if !ok {
				return 0, symbolError("Unknown symbol: %s", sym)
			}
			value += v
		}
		if value > 59 {
			return 0, symbolError("Each group must be 0–59")
		}
		t.shift(60, value)
	}
	return t.total, nil
}
