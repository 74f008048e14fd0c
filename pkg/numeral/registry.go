package numeral

import (
	"slices"
	"strings"
)

// System describes one numeral system and carries its converter pair.
type System struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Base        int        `json:"base"`
	Range       Range      `json:"range"`
	Structure   Structure  `json:"structure"`
	Shape       Shape      `json:"shape"`
	Order       Order      `json:"order"`
	Render      RenderMode `json:"render"`
	Era         string     `json:"era"`
	Region      string     `json:"region"`
	Description string     `json:"description"`
	Glyphs      []Glyph    `json:"glyphs"`

	prompt     string // shown when the decoder gets empty input
	runeGlyphs bool   // every glyph is a single rune
	encode     func(n int) (Notation, []Step)
	decode     func(in Notation, limit int) (int, *Error)
}

// Encode converts n to the system's notation. Numbers outside the system's
// range produce a Result with Err set instead of symbols.
func (s *System) Encode(n int) Result {
	if !s.Range.Contains(n) {
		return Result{
			System: s.ID,
			Number: n,
			Steps:  []Step{},
			Err:    rangeError("%s numerals cover %s", s.Name, s.Range),
		}
	}
	symbols, steps := s.encode(n)
	if steps == nil {
		steps = []Step{}
	}
	return Result{System: s.ID, Number: n, Symbols: symbols, Steps: steps}
}

// Decode converts a notation back to an integer. The input must have the
// system's shape and be in display order (most significant first).
func (s *System) Decode(in Notation) Decoded {
	if in == nil || in.Shape() != s.Shape {
		return decodedError(symbolError("%s expects %s input", s.Name, s.Shape))
	}
	if isEmpty(in) {
		return decodedError(symbolError("%s", s.prompt))
	}
	n, err := s.decode(in, s.Range.Max)
	if err != nil {
		return decodedError(err)
	}
	if !s.Range.Contains(n) {
		return decodedError(rangeError("Result out of range (%s)", s.Range))
	}
	return decodedValue(n)
}

func isEmpty(in Notation) bool {
	switch v := in.(type) {
	case Text:
		return strings.TrimSpace(string(v)) == ""
	case Sequence:
		return len(v) == 0
	case Groups:
		return len(v) == 0
	}
	return true
}

var systems = []*System{
	{
		ID:          Mayan,
		Name:        "Mayan",
		Base:        20,
		Range:       Range{0, 7_999_999},
		Structure:   Positional,
		Shape:       ShapeSequence,
		Order:       LeastSignificantFirst,
		Render:      RenderVertical,
		Era:         "~400 BC – 1500 AD",
		Region:      "Mesoamerica",
		Description: "Vigesimal (base-20) positional system with zero",
		Glyphs:      mayanGlyphs(),
		prompt:      "Add Mayan numeral symbols",
		encode:      encodeMayan,
		decode:      decodeMayan,
	},
	{
		ID:          Egyptian,
		Name:        "Egyptian",
		Base:        10,
		Range:       Range{1, 9_999_999},
		Structure:   Additive,
		Shape:       ShapeSequence,
		Order:       MostSignificantFirst,
		Render:      RenderHorizontal,
		Era:         "~3000 BC – 300 AD",
		Region:      "Nile Valley",
		Description: "Additive hieroglyphic system",
		Glyphs:      slices.Clone(egyptianGlyphs),
		prompt:      "Add Egyptian hieroglyphic symbols",
		runeGlyphs:  true,
		encode:      encodeEgyptian,
		decode:      decodeEgyptian,
	},
	{
		ID:          Babylonian,
		Name:        "Babylonian",
		Base:        60,
		Range:       Range{1, 12_959_999},
		Structure:   Grouped,
		Shape:       ShapeGroups,
		Order:       MostSignificantFirst,
		Render:      RenderGrouped,
		Era:         "~2000 BC – 100 AD",
		Region:      "Mesopotamia",
		Description: "Sexagesimal (base-60) cuneiform system",
		Glyphs:      slices.Clone(babylonianGlyphs),
		prompt:      "Add Babylonian cuneiform symbols",
		runeGlyphs:  true,
		encode:      encodeBabylonian,
		decode:      decodeBabylonian,
	},
	{
		ID:          Roman,
		Name:        "Roman",
		Base:        10,
		Range:       Range{1, 3_999},
		Structure:   Additive,
		Shape:       ShapeText,
		Order:       MostSignificantFirst,
		Render:      RenderText,
		Era:         "~500 BC – 1500 AD",
		Region:      "Roman Empire",
		Description: "Subtractive notation with letter symbols",
		Glyphs:      slices.Clone(romanGlyphs),
		prompt:      "Enter a Roman numeral",
		encode:      encodeRoman,
		decode:      decodeRoman,
	},
	{
		ID:          ChineseRod,
		Name:        "Chinese Rod",
		Base:        10,
		Range:       Range{1, 99_999},
		Structure:   Positional,
		Shape:       ShapeSequence,
		Order:       MostSignificantFirst,
		Render:      RenderHorizontal,
		Era:         "~300 BC – 1600 AD",
		Region:      "China",
		Description: "Decimal positional system using counting rods",
		Glyphs:      rodGlyphs(),
		prompt:      "Add Chinese rod numeral symbols",
		runeGlyphs:  true,
		encode:      encodeChineseRod,
		decode:      decodeChineseRod,
	},
	{
		ID:          GreekAttic,
		Name:        "Greek Attic",
		Base:        10,
		Range:       Range{1, 99_999},
		Structure:   Additive,
		Shape:       ShapeText,
		Order:       MostSignificantFirst,
		Render:      RenderText,
		Era:         "~500 BC – 100 BC",
		Region:      "Ancient Greece",
		Description: "Acrophonic additive system using initial letters",
		Glyphs:      slices.Clone(atticGlyphs),
		prompt:      "Enter a Greek Attic numeral",
		encode:      encodeGreekAttic,
		decode:      decodeGreekAttic,
	},
	{
		ID:          Quipu,
		Name:        "Quipu",
		Base:        10,
		Range:       Range{1, 99_999},
		Structure:   Positional,
		Shape:       ShapeSequence,
		Order:       LeastSignificantFirst,
		Render:      RenderCord,
		Era:         "~2600 BC – 1532 AD",
		Region:      "Andes (Inca Empire)",
		Description: "Base-10 knotted-string recording system",
		Glyphs:      slices.Clone(quipuGlyphs),
		prompt:      "Add Quipu knot symbols",
		encode:      encodeQuipu,
		decode:      decodeQuipu,
	},
}

var byID = func() map[ID]*System {
	m := make(map[ID]*System, len(systems))
	for _, s := range systems {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns a copy of the system registered under id. Changes to the
// copy, its Glyphs included, never reach the converters.
func Lookup(id string) (*System, bool) {
	s, ok := byID[ID(id)]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// Systems returns a copy of every system in display order.
func Systems() []*System {
	out := make([]*System, len(systems))
	for i, s := range systems {
		out[i] = s.clone()
	}
	return out
}

func (s *System) clone() *System {
	c := *s
	c.Glyphs = slices.Clone(s.Glyphs)
	return &c
}

// IDs returns every system id in display order.
func IDs() []ID {
	ids := make([]ID, len(systems))
	for i, s := range systems {
		ids[i] = s.ID
	}
	return ids
}

func mayanGlyphs() []Glyph {
	glyphs := make([]Glyph, len(mayanDigits))
	for d, sym := range mayanDigits {
		glyphs[d] = Glyph{Value: d, Symbol: sym}
	}
	glyphs[0].Name = "shell"
	return glyphs
}

func rodGlyphs() []Glyph {
	glyphs := []Glyph{{Value: 0, Symbol: rodZero, Name: "zero"}}
	for d := 1; d <= 9; d++ {
		glyphs = append(glyphs,
			Glyph{Value: d, Symbol: rodVertical[d], Name: "vertical"},
			Glyph{Value: d, Symbol: rodHorizontal[d], Name: "horizontal"},
		)
	}
	return glyphs
}
