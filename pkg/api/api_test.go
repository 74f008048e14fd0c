package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

func intPtr(n int) *int { return &n }

func TestHandleEncode(t *testing.T) {
	resp := Handle(Request{Op: OpEncode, System: "roman", Number: intPtr(1999)})

	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Encoded)
	assert.Equal(t, numeral.Text("MCMXCIX"), resp.Encoded.Symbols)
	assert.Equal(t, "MCMXCIX", resp.Display)
	assert.False(t, resp.Failed())
}

func TestHandleEncodeOutOfRange(t *testing.T) {
	resp := Handle(Request{Op: OpEncode, System: "roman", Number: intPtr(0)})

	require.NotNil(t, resp.Encoded)
	assert.False(t, resp.Encoded.OK())
	assert.Empty(t, resp.Display)
	assert.True(t, resp.Failed())
}

func TestHandleDecode(t *testing.T) {
	tests := []struct {
		name   string
		system string
		input  string
		want   int
	}{
		{"text string", "roman", `"mcmxcix"`, 1999},
		{"sequence string", "mayan", `"• ⠀"`, 20},
		{"sequence array", "chineseRod", `["𝍠","〇","𝍤"]`, 105},
		{"groups string", "babylonian", `"𒁹 | 𒁹 | 𒁹"`, 3661},
		{"groups array", "babylonian", `[["𒁹"],[],["𒌋","𒁹"]]`, 3611},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Handle(Request{Op: OpDecode, System: tt.system, Input: json.RawMessage(tt.input)})
			require.Empty(t, resp.Error)
			require.NotNil(t, resp.Decoded)
			n, err := resp.Decoded.Int()
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}

	t.Run("decoder error is data", func(t *testing.T) {
		resp := Handle(Request{Op: OpDecode, System: "quipu", Input: json.RawMessage(`["●"]`)})
		require.Empty(t, resp.Error)
		require.NotNil(t, resp.Decoded)
		assert.Equal(t, numeral.KindSymbol, resp.Decoded.Err.Kind)
		assert.True(t, resp.Failed())
	})

	t.Run("text system rejects arrays", func(t *testing.T) {
		resp := Handle(Request{Op: OpDecode, System: "roman", Input: json.RawMessage(`["X"]`)})
		assert.Equal(t, "Roman input must be a string", resp.Error)
	})
}

func TestHandleVerify(t *testing.T) {
	resp := Handle(Request{Op: OpVerify, System: "roman", Number: intPtr(5000)})
	require.NotNil(t, resp.Verification)
	assert.Equal(t, numeral.ErrOutOfRange, resp.Verification.Error)

	resp = Handle(Request{Op: OpVerify, System: "etruscan", Number: intPtr(5)})
	require.NotNil(t, resp.Verification)
	assert.Equal(t, numeral.ErrUnknownSystem, resp.Verification.Error)

	resp = Handle(Request{Op: OpVerify, System: "quipu", Number: intPtr(305)})
	assert.True(t, resp.Verification.Passed)
}

func TestHandleLint(t *testing.T) {
	resp := Handle(Request{Op: OpLint, System: "roman", Input: json.RawMessage(`"IIII"`)})
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Lint)
	assert.True(t, resp.Lint.Valid)
	assert.Len(t, resp.Lint.Issues, 1)
}

func TestHandleSystems(t *testing.T) {
	resp := Handle(Request{Op: OpSystems})
	require.Empty(t, resp.Error)
	assert.Len(t, resp.Systems, 7)
}

func TestHandleCompare(t *testing.T) {
	resp := Handle(Request{Op: OpCompare, Number: intPtr(5000)})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Comparison, 7)
	assert.False(t, resp.Failed())

	for i, id := range numeral.IDs() {
		c := resp.Comparison[i]
		assert.Equal(t, id, c.System)
		if id == numeral.Roman {
			assert.False(t, c.Encoded.OK())
			assert.Empty(t, c.Display)
			assert.Equal(t, numeral.ErrOutOfRange, c.Verification.Error)
			continue
		}
		assert.True(t, c.Encoded.OK(), id)
		assert.NotEmpty(t, c.Display, id)
		assert.True(t, c.Verification.Passed, id)
	}

	t.Run("zero is only Mayan", func(t *testing.T) {
		resp := Handle(Request{Op: OpCompare, Number: intPtr(0)})
		var ok []numeral.ID
		for _, c := range resp.Comparison {
			if c.Encoded.OK() {
				ok = append(ok, c.System)
			}
		}
		assert.Equal(t, []numeral.ID{numeral.Mayan}, ok)
		assert.Equal(t, "⠀", resp.Comparison[0].Display)
		assert.False(t, resp.Failed())
	})

	t.Run("no system covers a negative number", func(t *testing.T) {
		resp := Handle(Request{Op: OpCompare, Number: intPtr(-1)})
		require.Len(t, resp.Comparison, 7)
		assert.True(t, resp.Failed())
	})

	t.Run("system is ignored", func(t *testing.T) {
		resp := Handle(Request{Op: OpCompare, System: "etruscan", Number: intPtr(10)})
		assert.Empty(t, resp.Error)
		assert.Len(t, resp.Comparison, 7)
	})
}

func TestHandleHistory(t *testing.T) {
	resp := Handle(Request{Op: OpHistory, System: "greekAttic"})
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.History)
	assert.Equal(t, numeral.GreekAttic, resp.History.System)
	assert.NotEmpty(t, resp.History.Sources)
	assert.False(t, resp.Failed())

	resp = Handle(Request{Op: OpHistory, System: "etruscan"})
	assert.Equal(t, `Unknown system: "etruscan"`, resp.Error)
}

func TestHandleValidation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"missing op", Request{System: "roman", Number: intPtr(1)}},
		{"unknown op", Request{Op: "translate", System: "roman"}},
		{"encode without number", Request{Op: OpEncode, System: "roman"}},
		{"encode without system", Request{Op: OpEncode, Number: intPtr(1)}},
		{"decode without input", Request{Op: OpDecode, System: "roman"}},
		{"compare without number", Request{Op: OpCompare}},
		{"history without system", Request{Op: OpHistory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Handle(tt.req)
			assert.Contains(t, resp.Error, "invalid request")
			assert.True(t, resp.Failed())
		})
	}

	t.Run("unknown system", func(t *testing.T) {
		resp := Handle(Request{Op: OpEncode, System: "etruscan", Number: intPtr(1)})
		assert.Equal(t, `Unknown system: "etruscan"`, resp.Error)
	})
}

func TestRun(t *testing.T) {
	out, err := Run(`{"op":"encode","system":"mayan","number":400}`)
	require.NoError(t, err)

	var resp struct {
		Op      string `json:"op"`
		Display string `json:"display"`
		Encoded struct {
			Symbols []string       `json:"symbols"`
			Steps   []numeral.Step `json:"steps"`
		} `json:"encoded"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "encode", resp.Op)
	assert.Equal(t, "• ⠀ ⠀", resp.Display)
	assert.Equal(t, []string{"⠀", "⠀", "•"}, resp.Encoded.Symbols)
	require.Len(t, resp.Encoded.Steps, 3)
	assert.Equal(t, 400, resp.Encoded.Steps[0].Value)

	_, err = Run(`{not json`)
	assert.Error(t, err)
}
