package numeral

import (
	"slices"
	"strings"
)

// Symbol tables. Ordered slices, not maps: the greedy encoders (Roman,
// Greek Attic, Egyptian) depend on iteration order.

// mayanDigits maps digit 0-19 to its dot-and-bar glyph; index is the digit.
var mayanDigits = [20]string{
	"⠀", "•", "••", "•••", "••••",
	"－", "•－", "••－", "•••－", "••••－",
	"＝", "•＝", "••＝", "•••＝", "••••＝",
	"≡", "•≡", "••≡", "•••≡", "••••≡",
}

var egyptianGlyphs = []Glyph{
	{1_000_000, "𓁨", "god Heh"},
	{100_000, "𓆐", "tadpole"},
	{10_000, "𓂭", "finger"},
	{1_000, "𓆼", "lotus"},
	{100, "𓍢", "coil of rope"},
	{10, "𓎆", "heel bone"},
	{1, "𓏺", "stroke"},
}

const (
	babylonianUnit = "𒁹"
	babylonianTen  = "𒌋"
)

var babylonianGlyphs = []Glyph{
	{10, babylonianTen, "ten wedge"},
	{1, babylonianUnit, "unit wedge"},
}

var romanGlyphs = []Glyph{
	{1000, "M", ""},
	{900, "CM", ""},
	{500, "D", ""},
	{400, "CD", ""},
	{100, "C", ""},
	{90, "XC", ""},
	{50, "L", ""},
	{40, "XL", ""},
	{10, "X", ""},
	{9, "IX", ""},
	{5, "V", ""},
	{4, "IV", ""},
	{1, "I", ""},
}

// romanLetters holds the single letters accepted by the decoder.
var romanLetters = map[rune]int{
	'M': 1000, 'D': 500, 'C': 100, 'L': 50, 'X': 10, 'V': 5, 'I': 1,
}

const rodZero = "〇"

// Counting-rod digits; index is the digit, index 0 is unused (zero has its own glyph).
var (
	rodVertical   = [10]string{"", "𝍠", "𝍡", "𝍢", "𝍣", "𝍤", "𝍥", "𝍦", "𝍧", "𝍨"}
	rodHorizontal = [10]string{"", "𝍩", "𝍪", "𝍫", "𝍬", "𝍭", "𝍮", "𝍯", "𝍰", "𝍱"}
)

var atticGlyphs = []Glyph{
	{50_000, "M𐅂", "five myriads"},
	{10_000, "M", "myriad"},
	{5_000, "𐅁", "five thousands"},
	{1_000, "Χ", "khilioi (thousand)"},
	{500, "𐅀", "five hundreds"},
	{100, "Η", "hekaton (hundred)"},
	{50, "𐄿", "fifty"},
	{10, "Δ", "deka (ten)"},
	{5, "Π", "pente (five)"},
	{1, "Ι", "one"},
}

const (
	knotSimple      = "●"
	knotLong        = "◎"
	knotFigureEight = "∞"
	knotZero        = "—"
)

var quipuGlyphs = []Glyph{
	{0, knotZero, "no knots"},
	{1, knotFigureEight, "figure-eight knot"},
	{1, knotLong, "long knot turn"},
	{1, knotSimple, "simple knot"},
}

// placeNames names decimal places from the ones upward.
var placeNames = []string{"ones", "tens", "hundreds", "thousands", "ten-thousands"}

func placeName(pos int) string {
	if pos < len(placeNames) {
		return placeNames[pos]
	}
	return "position " + group(pos)
}

// Reverse lookups, built once.
var (
	mayanValues      = indexDigits(mayanDigits[:])
	egyptianValues   = indexGlyphs(egyptianGlyphs)
	babylonianValues = indexGlyphs(babylonianGlyphs)
	rodVerticalVals  = indexDigits(rodVertical[:])
	rodHorizVals     = indexDigits(rodHorizontal[:])
	atticTokens      = longestFirst(atticGlyphs)
	quipuDigits      = indexQuipu()
)

func indexDigits(table []string) map[string]int {
	m := make(map[string]int, len(table))
	for d, sym := range table {
		if sym != "" {
			m[sym] = d
		}
	}
	return m
}

func indexGlyphs(table []Glyph) map[string]int {
	m := make(map[string]int, len(table))
	for _, g := range table {
		m[g.Symbol] = g.Value
	}
	return m
}

// longestFirst orders tokens by byte length, longest first, keeping table
// order among equals, so multi-glyph ligatures are tried before their parts.
func longestFirst(table []Glyph) []Glyph {
	out := slices.Clone(table)
	slices.SortStableFunc(out, func(a, b Glyph) int {
		return len(b.Symbol) - len(a.Symbol)
	})
	return out
}

// indexQuipu maps every knot cluster the encoder can produce to its digit.
// Clusters of different knot families may share a digit; the decoder checks
// which family is allowed at each place.
func indexQuipu() map[string]int {
	m := map[string]int{knotZero: 0, knotFigureEight: 1}
	for d := 2; d <= 9; d++ {
		m[strings.Repeat(knotLong, d)] = d
	}
	for d := 1; d <= 9; d++ {
		m[strings.Repeat(knotSimple, d)] = d
	}
	return m
}

// digitsLSF returns the decimal digits of n > 0, least significant first.
func digitsLSF(n int) []int {
	var digits []int
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	return digits
}
