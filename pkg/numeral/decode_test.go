package numeral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOK(t *testing.T, s *System, in Notation) int {
	t.Helper()
	n, err := s.Decode(in).Int()
	require.NoError(t, err)
	return n
}

func decodeErr(t *testing.T, s *System, in Notation) *Error {
	t.Helper()
	d := s.Decode(in)
	require.NotNil(t, d.Err, "expected an error decoding %v", in)
	assert.Nil(t, d.Value)
	return d.Err
}

func TestDecodeRoman(t *testing.T) {
	roman := mustSystem(t, Roman)

	t.Run("valid", func(t *testing.T) {
		tests := map[string]int{
			"I":         1,
			"IV":        4,
			"XLII":      42,
			"MCMXCIX":   1999,
			"mmxxiv":    2024,
			"  XIV  ":   14,
			"MMMCMXCIX": 3999,
		}
		for in, want := range tests {
			assert.Equal(t, want, decodeOK(t, roman, Text(in)), in)
		}
	})

	t.Run("non-canonical forms still decode", func(t *testing.T) {
		assert.Equal(t, 4, decodeOK(t, roman, Text("IIII")))
		assert.Equal(t, 99, decodeOK(t, roman, Text("IC")))
	})

	t.Run("invalid character names the character", func(t *testing.T) {
		err := decodeErr(t, roman, Text("XIZ"))
		assert.Equal(t, KindSymbol, err.Kind)
		assert.Equal(t, `Invalid character "Z". Use only M, D, C, L, X, V, I`, err.Message)
	})

	t.Run("result above range", func(t *testing.T) {
		err := decodeErr(t, roman, Text("MMMM"))
		assert.Equal(t, KindRange, err.Kind)
		assert.Equal(t, "Result out of range (1–3,999)", err.Message)
	})

	t.Run("long input pins instead of overflowing", func(t *testing.T) {
		err := decodeErr(t, roman, Text(strings.Repeat("M", 100_000)))
		assert.Equal(t, KindRange, err.Kind)
	})

	t.Run("empty prompts for input", func(t *testing.T) {
		err := decodeErr(t, roman, Text("   "))
		assert.Equal(t, "Enter a Roman numeral", err.Message)
	})
}

func TestDecodeEgyptian(t *testing.T) {
	egyptian := mustSystem(t, Egyptian)

	assert.Equal(t, 1234, decodeOK(t, egyptian, Sequence{"𓆼", "𓍢", "𓍢", "𓎆", "𓎆", "𓎆", "𓏺", "𓏺", "𓏺", "𓏺"}))
	assert.Equal(t, 11, decodeOK(t, egyptian, Sequence{"𓏺", "𓎆"}), "order does not matter")

	err := decodeErr(t, egyptian, Sequence{"𓏺", "X"})
	assert.Equal(t, "Unknown symbol: X", err.Message)

	err = decodeErr(t, egyptian, Sequence{})
	assert.Equal(t, "Add Egyptian hieroglyphic symbols", err.Message)

	tenMillion := make(Sequence, 10)
	for i := range tenMillion {
		tenMillion[i] = "𓁨"
	}
	assert.Equal(t, KindRange, decodeErr(t, egyptian, tenMillion).Kind)
}

func TestDecodeBabylonian(t *testing.T) {
	babylonian := mustSystem(t, Babylonian)

	assert.Equal(t, 3661, decodeOK(t, babylonian, Groups{{"𒁹"}, {"𒁹"}, {"𒁹"}}))
	assert.Equal(t, 60, decodeOK(t, babylonian, Groups{{"𒁹"}, {}}))
	assert.Equal(t, 7225, decodeOK(t, babylonian, Groups{{"𒁹", "𒁹"}, {}, {"𒌋", "𒌋", "𒁹", "𒁹", "𒁹", "𒁹", "𒁹"}}))

	t.Run("group above 59", func(t *testing.T) {
		sixty := make([]string, 6)
		for i := range sixty {
			sixty[i] = "𒌋"
		}
		err := decodeErr(t, babylonian, Groups{sixty})
		assert.Equal(t, "Each group must be 0–59", err.Message)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		err := decodeErr(t, babylonian, Groups{{"𒁹", "x"}})
		assert.Equal(t, "Unknown symbol: x", err.Message)
	})

	t.Run("all-empty groups decode to zero, below range", func(t *testing.T) {
		err := decodeErr(t, babylonian, Groups{{}, {}})
		assert.Equal(t, KindRange, err.Kind)
	})

	t.Run("five places exceed the range", func(t *testing.T) {
		err := decodeErr(t, babylonian, Groups{{"𒁹"}, {}, {}, {}, {}})
		assert.Equal(t, "Result out of range (1–12,959,999)", err.Message)
	})
}

func TestDecodeMayan(t *testing.T) {
	mayan := mustSystem(t, Mayan)

	assert.Equal(t, 0, decodeOK(t, mayan, Sequence{"⠀"}))
	assert.Equal(t, 20, decodeOK(t, mayan, Sequence{"•", "⠀"}))
	assert.Equal(t, 400, decodeOK(t, mayan, Sequence{"•", "⠀", "⠀"}))
	assert.Equal(t, 399, decodeOK(t, mayan, Sequence{"••••≡", "••••≡"}))

	err := decodeErr(t, mayan, Sequence{"•", "?"})
	assert.Equal(t, "Unknown symbol at position 1", err.Message)

	err = decodeErr(t, mayan, Sequence{"•", "⠀", "⠀", "⠀", "⠀", "⠀", "⠀"})
	assert.Equal(t, KindRange, err.Kind)
}

func TestDecodeChineseRod(t *testing.T) {
	rod := mustSystem(t, ChineseRod)

	assert.Equal(t, 105, decodeOK(t, rod, Sequence{"𝍠", "〇", "𝍤"}))
	assert.Equal(t, 42, decodeOK(t, rod, Sequence{"𝍬", "𝍡"}))
	assert.Equal(t, 42, decodeOK(t, rod, Sequence{"𝍣", "𝍪"}), "orientation is not enforced")

	err := decodeErr(t, rod, Sequence{"𝍠", "5"})
	assert.Equal(t, "Unknown symbol: 5", err.Message)

	err = decodeErr(t, rod, Sequence{"〇"})
	assert.Equal(t, KindRange, err.Kind)
}

func TestDecodeGreekAttic(t *testing.T) {
	attic := mustSystem(t, GreekAttic)

	tests := map[string]int{
		"𐄿":    50,
		"ΔΔΠΙ": 26,
		"𐅁ΧΧ𐅀ΗΗ𐄿ΔΔΠΙΙ":              7777,
		"M𐅂MMMM𐅁ΧΧΧΧ𐅀ΗΗΗΗ𐄿ΔΔΔΔΠΙΙΙΙ": 99999,
		" Χ ":                      1000,
	}
	for in, want := range tests {
		assert.Equal(t, want, decodeOK(t, attic, Text(in)), in)
	}

	err := decodeErr(t, attic, Text("ΔQ"))
	assert.Equal(t, `Unknown symbol at: "Q"`, err.Message)

	err = decodeErr(t, attic, Text("M𐅂M𐅂"))
	assert.Equal(t, KindRange, err.Kind)
}

func TestDecodeGreekAtticLigatureFirst(t *testing.T) {
	attic := mustSystem(t, GreekAttic)

	assert.Equal(t, 50000, decodeOK(t, attic, Text("M𐅂")))
	assert.Equal(t, 10000, decodeOK(t, attic, Text("M")))
	assert.Equal(t, 60000, decodeOK(t, attic, Text("M𐅂M")))
	assert.Equal(t, 70000, decodeOK(t, attic, Text("MM𐅂M")), "order is not enforced")

	err := decodeErr(t, attic, Text("𐅂"))
	assert.Equal(t, `Unknown symbol at: "𐅂"`, err.Message)
}

func TestDecodeQuipu(t *testing.T) {
	quipu := mustSystem(t, Quipu)

	assert.Equal(t, 1, decodeOK(t, quipu, Sequence{"∞"}))
	assert.Equal(t, 10, decodeOK(t, quipu, Sequence{"●", "—"}))
	assert.Equal(t, 305, decodeOK(t, quipu, Sequence{"●●●", "—", "◎◎◎◎◎"}))

	tests := []struct {
		name string
		in   Sequence
		want string
	}{
		{"simple knot at ones", Sequence{"●"}, "Ones place value of 1 must use figure-eight knot (∞), not simple knot"},
		{"simple knots at ones", Sequence{"●●●"}, "Ones place values 2–9 must use long knots (◎)"},
		{"long knots above ones", Sequence{"◎◎", "∞"}, "Higher places must use simple knots (●)"},
		{"figure-eight above ones", Sequence{"∞", "∞"}, "Higher places must use simple knots (●)"},
		{"unknown cluster", Sequence{"●", "x"}, "Unknown symbol at position 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeErr(t, quipu, tt.in)
			assert.Equal(t, KindSymbol, err.Kind)
			assert.Equal(t, tt.want, err.Message)
		})
	}
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	tests := []struct {
		id ID
		in Notation
	}{
		{Roman, Sequence{"X"}},
		{Mayan, Text("•")},
		{Babylonian, Sequence{"𒁹"}},
		{Quipu, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			err := decodeErr(t, mustSystem(t, tt.id), tt.in)
			assert.Equal(t, KindSymbol, err.Kind)
			assert.Contains(t, err.Message, "expects")
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, s := range Systems() {
		var empty Notation
		switch s.Shape {
		case ShapeText:
			empty = Text("")
		case ShapeSequence:
			empty = Sequence{}
		case ShapeGroups:
			empty = Groups{}
		}
		err := decodeErr(t, s, empty)
		assert.Equal(t, KindSymbol, err.Kind, s.ID)
		assert.Equal(t, s.prompt, err.Message, s.ID)
	}
}
