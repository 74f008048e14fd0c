package numeral

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSONRoundTrip(t *testing.T) {
	for _, id := range IDs() {
		t.Run(string(id), func(t *testing.T) {
			s := mustSystem(t, id)
			want := s.Encode(s.Range.Max)

			data, err := json.Marshal(want)
			require.NoError(t, err)

			var got Result
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, want, got)
			assert.Equal(t, s.Shape, got.Symbols.Shape())
		})
	}
}

func TestResultJSONWithError(t *testing.T) {
	want := mustSystem(t, Roman).Encode(4000)
	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Nil(t, got.Symbols)
	require.NotNil(t, got.Err)
	assert.Equal(t, KindRange, got.Err.Kind)
	assert.Equal(t, "Roman numerals cover 1–3,999", got.Err.Message)
}

func TestResultJSONRejectsBadSymbols(t *testing.T) {
	var r Result
	err := json.Unmarshal([]byte(`{"system":"babylonian","number":1,"symbols":"𒁹","steps":[]}`), &r)
	assert.ErrorContains(t, err, "unmarshal babylonian symbols")

	err = json.Unmarshal([]byte(`{"system":"etruscan","number":1,"symbols":"X","steps":[]}`), &r)
	assert.ErrorContains(t, err, `unknown system "etruscan"`)
}
