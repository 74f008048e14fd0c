// Package history holds the historical background of each numeral system:
// an overview, notable facts, how the numerals were used and where to read more.
package history

import (
	"slices"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// Source is a reference for further reading.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Entry is the background for one system.
type Entry struct {
	System   numeral.ID `json:"system"`
	Overview string     `json:"overview"`
	Facts    []string   `json:"facts"`
	Usage    string     `json:"usage"`
	Sources  []Source   `json:"sources"`
}

var entries = map[numeral.ID]Entry{
	numeral.Mayan: {
		Overview: "Maya scribes wrote a vigesimal positional system from dots, bars and a shell glyph for zero, one of the earliest explicit zero symbols.",
		Facts: []string{
			"Digits 0–19 stack up to four dots (ones) over up to three bars (fives), with the shell for zero; each higher place is worth twenty times the one below.",
			"Numerals are written vertically with the lowest place at the bottom. Long Count dates make the third place 18×20 (360) to follow the tun cycle.",
			"Stelae and codices use these numerals for calendar counts and astronomical tables.",
		},
		Usage: "Base-20 arithmetic drove the Tzolk'in, Haab and Long Count calendars and let astronomer-priests track solar and Venus cycles.",
		Sources: []Source{
			{"Maya numerals (Wikipedia)", "https://en.wikipedia.org/wiki/Maya_numerals"},
			{"MAA Convergence: The Mayan Number System", "https://old.maa.org/press/periodicals/convergence/when-a-number-system-loses-uniqueness-the-case-of-the-maya-the-mayan-number-system"},
		},
	},
	numeral.Egyptian: {
		Overview: "Egyptian hieroglyphic numerals are an additive decimal scheme with one glyph per power of ten, from a single stroke (1) up to the kneeling god Heh (1,000,000).",
		Facts: []string{
			"Each power-of-ten glyph repeats up to nine times; values are read by adding symbols, with no place value and no zero.",
			"The same set underlies the cursive hieratic numerals of the Rhind Mathematical Papyrus, which tabulates fractions and practical problems.",
			"The glyphs are named after everyday and sacred objects: stroke, heel bone, coil of rope, lotus, finger, tadpole and the god Heh.",
		},
		Usage: "Tax rolls, building tallies and funerary inscriptions all used additive numerals, repeating a glyph once for every unit of its power of ten.",
		Sources: []Source{
			{"Encyclopaedia Britannica: Egyptian numerals", "https://www.britannica.com/science/numeral/Egyptian-numerals"},
			{"MAA Convergence: The Rhind and Moscow Mathematical Papyri", "https://old.maa.org/press/periodicals/convergence/mathematical-treasure-the-rhind-and-moscow-mathematical-papyri"},
		},
	},
	numeral.Babylonian: {
		Overview: "The Babylonian sexagesimal system writes digits 0–59 with two cuneiform wedges, a unit wedge and a ten wedge, and weights each place by a power of 60.",
		Facts: []string{
			"Places are worth 1, 60, 3,600, 216,000 and so on, so tablets group a wedge cluster per base-60 digit.",
			"Units 1–9 repeat the unit wedge and tens 10–50 repeat the corner wedge; together they cover every value up to 59.",
			"Early scribes left a gap for zero. A double-wedge placeholder came later, between nonzero digits only, so trailing zeros stayed implicit.",
		},
		Usage: "Astronomers, surveyors and merchants used sexagesimal place value for ephemerides, land measures and interest tables.",
		Sources: []Source{
			{"Encyclopaedia Britannica: Babylonian numerals", "https://www.britannica.com/science/numeral/Babylonian-numerals"},
			{"Sexagesimal (Wikipedia)", "https://en.wikipedia.org/wiki/Sexagesimal"},
		},
	},
	numeral.Roman: {
		Overview: "Roman numerals descend from Etruscan tally marks and use seven Latin letters (I, V, X, L, C, D, M), with no place value and no zero.",
		Facts: []string{
			"Symbols are written largest first. Later convention added subtractive pairs (IV, IX, XL, XC, CD, CM) to avoid four repeats.",
			"A vinculum drawn over a numeral multiplies it by 1,000 when an inscription needs more than 3,999.",
			"With no zero symbol, nothing was written as a blank or a word, and everyday use stayed within a few thousand.",
		},
		Usage: "Merchants, soldiers and stonecutters across the Roman world kept ledgers and carved monuments in additive and subtractive numerals within the classical 1–3,999 range.",
		Sources: []Source{
			{"Encyclopaedia Britannica: Roman numerals", "https://www.britannica.com/topic/Roman-numeral"},
			{"Story of Mathematics: Roman Numerals", "https://www.storyofmathematics.com/roman.html/"},
		},
	},
	numeral.ChineseRod: {
		Overview: "Chinese counting rod numerals form a decimal positional system of bamboo rods laid on a counting board, alternating orientation between adjacent places.",
		Facts: []string{
			"Ones, hundreds and ten-thousands use vertical rods; tens and thousands lie horizontally so neighbouring digits stay apart.",
			"An empty cell is zero. Later texts draw a small circle to keep the board aligned where no rods lie.",
			"Red rods counted positive and black rods negative, which allowed signed arithmetic and the linear systems of The Nine Chapters.",
		},
		Usage: "Counting boards served administration, taxation and astronomy until the abacus took over.",
		Sources: []Source{
			{"Counting rods (Wikipedia)", "https://en.wikipedia.org/wiki/Counting_rods"},
			{"MAA Convergence: The Nine Chapters, Numbers and Units", "https://old.maa.org/press/periodicals/convergence/a-classic-from-china-the-nine-chapters-numbers-and-units"},
		},
	},
	numeral.GreekAttic: {
		Overview: "Greek Attic (acrophonic) numerals use the first letters of number words, Ι (1), Π (5), Δ (10), Η (100), Χ (1,000) and M (10,000), plus ligatures for five times a power of ten.",
		Facts: []string{
			"Values add with no subtraction and no zero, so numerals run largest glyph first much like Roman numerals.",
			"Ligatures of pente with deka, hekaton, khilioi and myrioi write 50, 500, 5,000 and 50,000.",
			"The system filled Athenian decrees and financial inscriptions from about the 7th to the 3rd century BCE, until Ionian alphabetic numerals replaced it.",
		},
		Usage: "Treasurers kept accounts and tribute lists on stone, repeating Attic glyphs for every unit as clerks carved them.",
		Sources: []Source{
			{"MacTutor: Greek Numbers", "https://mathshistory.st-andrews.ac.uk/HistTopics/Greek_numbers/"},
			{"EpiDoc Guidelines: Acrophonic Numbers", "https://epidoc.stoa.org/gl/latest/trans-numacrophonic.html"},
		},
	},
	numeral.Quipu: {
		Overview: "Quipu (khipu) are knotted cords used across the Andes before and during the Inca Empire to record numbers, and perhaps narrative, in base-10 place value.",
		Facts: []string{
			"In the ones place a long knot's turns give 2–9 and a figure-eight knot gives 1. Clusters of simple knots give tens, hundreds and thousands, and a bare stretch of cord is zero.",
			"Subsidiary cords could hang from any pendant to flag exceptions, such as damaged goods in a storehouse tally.",
			"A main cord could bind dozens of pendants, one per village or commodity in a provincial census.",
		},
		Usage: "Inca record keepers (quipucamayocs) tracked census counts, tribute and storehouse inventories along the empire's road network.",
		Sources: []Source{
			{"Quipu (Wikipedia)", "https://en.wikipedia.org/wiki/Quipu"},
			{"Quipu: World History Encyclopedia", "https://www.worldhistory.org/Quipu/"},
		},
	},
}

// For returns the background of a system. The entry is a copy.
func For(id numeral.ID) (Entry, bool) {
	e, ok := entries[id]
	if !ok {
		return Entry{}, false
	}
	e.System = id
	e.Facts = slices.Clone(e.Facts)
	e.Sources = slices.Clone(e.Sources)
	return e, true
}
