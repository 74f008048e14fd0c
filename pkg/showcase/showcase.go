// Package showcase holds curated numbers for each system, each chosen to
// show off one property of the notation, and renders them as verified rows.
package showcase

import (
	"fmt"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// Example is one curated number with what it teaches.
type Example struct {
	Number    int    `json:"number"`
	Highlight string `json:"highlight"`
	Concept   string `json:"concept"`
}

// Row is an example together with its encoding and round-trip check.
type Row struct {
	Example
	Display      string               `json:"display"`
	Result       numeral.Result       `json:"result"`
	Verification numeral.Verification `json:"verification"`
}

var examples = map[numeral.ID][]Example{
	numeral.Mayan: {
		{0, "One of the earliest explicit zero symbols in history", "zero"},
		{19, "Largest single-position value: four dots over three bars", "max-digit"},
		{20, "Base-20 rollover: zero in the ones, one in the twenties", "base-rollover"},
		{399, "Largest two-position number (19×20 + 19)", "position-max"},
		{400, "Third position opens: 1×20² shows powers of twenty", "higher-position"},
		{7999, "Three full positions, each showing 19", "full-positions"},
	},
	numeral.Egyptian: {
		{1, "A single stroke, the simplest hieroglyphic numeral", "unit"},
		{9, "Nine strokes: the maximum repetition before a new symbol", "repetition-limit"},
		{10, "The heel bone glyph replaces ten strokes", "symbol-transition"},
		{111, "One of each: rope coil, heel bone and stroke", "additive"},
		{5555, "Five of each symbol through the thousands, pure addition", "full-additive"},
		{1234567, "All seven hieroglyphs used, from stroke to the kneeling god Heh", "full-symbol-set"},
	},
	numeral.Babylonian: {
		{1, "A single unit wedge, the foundation of cuneiform math", "unit"},
		{59, "Largest single-position value: five ten-wedges plus nine units", "max-digit"},
		{60, "Base-60 rollover: one group of 60, zero in the ones", "base-rollover"},
		{61, "Two positions, 1×60 + 1, distinguishing 61 from 2", "positional"},
		{3600, "Third position: 1×60² reaches into the thousands", "higher-position"},
		{3661, "All three positions active: 1×3600 + 1×60 + 1", "full-positions"},
	},
	numeral.Roman: {
		{4, "IV, the first subtractive pair (5 minus 1)", "subtraction"},
		{9, "IX, a subtractive pair at the ones place", "subtraction"},
		{49, "XLIX, compound subtraction at two levels", "compound-subtraction"},
		{400, "CD, a subtractive pair in the hundreds", "subtraction-hundreds"},
		{900, "CM, the largest subtractive pair", "max-subtraction"},
		{1994, "MCMXCIV uses three subtractive pairs in one number", "all-subtractive"},
		{3999, "MMMCMXCIX, the largest representable Roman numeral", "system-max"},
	},
	numeral.ChineseRod: {
		{5, "Vertical orientation for the ones place", "orientation"},
		{50, "Horizontal orientation for the tens place shows the alternation", "alternation"},
		{505, "Zero placeholder between matching digits", "zero-placeholder"},
		{6789, "Orientation alternates across four places", "full-alternation"},
		{12345, "All five positions active: a full decimal positional display", "five-positions"},
	},
	numeral.GreekAttic: {
		{1, "A single vertical stroke (Ι), the simplest glyph", "unit"},
		{5, "Pi (Π) for pente: the first letter of the word names the number", "acrophonic"},
		{10, "Delta (Δ) for deka: each power of ten gets its own letter", "powers"},
		{50, "The five-ligature 𐄿 combines five with ten", "ligature"},
		{500, "The five-ligature 𐅀, five times hekaton", "ligature-hundreds"},
		{5000, "The five-ligature 𐅁, five times khilioi", "ligature-thousands"},
		{50000, "The five-ligature M𐅂, the largest standard Attic numeral", "ligature-max"},
	},
	numeral.Quipu: {
		{1, "Figure-eight knot (∞), the only knot for one in the ones place", "figure-eight"},
		{5, "Five-turn long knot in the ones place; long knots encode 2–9", "long-knot"},
		{10, "One simple knot in the tens place; higher places use a different knot", "simple-knot"},
		{100, "Zero gap in the tens, one knot in the hundreds: absence means zero", "zero-gap"},
		{305, "Zeros between nonzero positions: gaps on the cord carry meaning", "zero-placeholder"},
		{12345, "All five positions occupied: a full positional decimal on a single cord", "full-positions"},
	},
}

// Examples returns the curated examples for a system, or nil for an unknown id.
func Examples(id numeral.ID) []Example {
	return examples[id]
}

// Table encodes and verifies every example of one system.
func Table(id string) ([]Row, error) {
	s, ok := numeral.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown system %q", id)
	}
	exs := examples[s.ID]
	rows := make([]Row, 0, len(exs))
	for _, ex := range exs {
		res := s.Encode(ex.Number)
		rows = append(rows, Row{
			Example:      ex,
			Display:      s.Format(res.Symbols),
			Result:       res,
			Verification: s.Verify(ex.Number),
		})
	}
	return rows, nil
}
