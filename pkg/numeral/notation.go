package numeral

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// Notation is the written form of a number in one system. The concrete type
// is fixed per system: Text, Sequence or Groups.
type Notation interface {
	Shape() Shape
	isNotation()
}

// Text is a single composed string (Roman, Greek Attic).
type Text string

// Sequence is an ordered list of display units (Mayan, Egyptian, Chinese Rod, Quipu).
type Sequence []string

// Groups is an ordered list of glyph groups, one per place (Babylonian).
type Groups [][]string

func (Text) Shape() Shape     { return ShapeText }
func (Sequence) Shape() Shape { return ShapeSequence }
func (Groups) Shape() Shape   { return ShapeGroups }

func (Text) isNotation()     {}
func (Sequence) isNotation() {}
func (Groups) isNotation()   {}

// Reversed returns a reversed copy of the sequence.
func (s Sequence) Reversed() Sequence {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

// Format renders encoder output as one line of text in display order.
// The output is accepted by ParseNotation for the same system.
func (s *System) Format(n Notation) string {
	return Line(s.reshape(n))
}

// Line renders a notation that is already in display order, such as
// decoder input, as one line of text.
func Line(n Notation) string {
	switch v := n.(type) {
	case Text:
		return string(v)
	case Sequence:
		return strings.Join(v, " ")
	case Groups:
		parts := make([]string, len(v))
		for i, g := range v {
			parts[i] = strings.Join(g, "")
		}
		return strings.Join(parts, " | ")
	default:
		return ""
	}
}

// ParseNotation reads a typed line of symbols into the system's input shape.
//
// Text systems take the line as is. Sequences split on whitespace or commas;
// systems whose glyphs are single runes also split each run into runes.
// Groups split on "|" and read each group rune by rune, so "𒁹 | | 𒌋𒁹"
// is three places with an empty middle group.
func (s *System) ParseNotation(line string) (Notation, error) {
	line = norm.NFC.String(line)
	switch s.Shape {
	case ShapeText:
		return Text(line), nil
	case ShapeSequence:
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		seq := make(Sequence, 0, len(fields))
		for _, f := range fields {
			if s.runeGlyphs {
				seq = append(seq, splitRunes(f)...)
			} else {
				seq = append(seq, f)
			}
		}
		return seq, nil
	case ShapeGroups:
		if strings.TrimSpace(line) == "" {
			return Groups{}, nil
		}
		parts := strings.Split(line, "|")
		groups := make(Groups, len(parts))
		for i, p := range parts {
			groups[i] = splitRunes(strings.Join(strings.Fields(p), ""))
		}
		return groups, nil
	default:
		return nil, fmt.Errorf("unsupported shape %q", s.Shape)
	}
}

// splitRunes returns each rune of s as its own string. It never returns nil.
func splitRunes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// printer groups digits the same way regardless of the caller's locale.
var printer = message.NewPrinter(language.English)

// group formats n with thousands separators, e.g. 12959999 -> "12,959,999".
func group(n int) string {
	return printer.Sprintf("%d", n)
}
