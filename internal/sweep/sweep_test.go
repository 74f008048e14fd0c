package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

func TestRunFullRange(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Systems: []numeral.ID{numeral.Roman, numeral.GreekAttic},
		Workers: 4,
	})
	require.NoError(t, err)
	require.Len(t, report.Systems, 2)

	roman := report.Systems[0]
	assert.Equal(t, numeral.Roman, roman.System)
	assert.Equal(t, 3999, roman.Checked)
	assert.Zero(t, roman.Failed)
	assert.Empty(t, roman.Failures)
	assert.Equal(t, 99_999, report.Systems[1].Checked)
	assert.True(t, report.Passed())
}

func TestRunClampsRange(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Range: &numeral.Range{Min: 0, Max: 25_000},
	})
	require.NoError(t, err)
	require.Len(t, report.Systems, len(numeral.IDs()))

	want := map[numeral.ID]numeral.Range{
		numeral.Mayan: {Min: 0, Max: 25_000},
		numeral.Roman: {Min: 1, Max: 3999},
		numeral.Quipu: {Min: 1, Max: 25_000},
	}
	for _, sr := range report.Systems {
		if r, ok := want[sr.System]; ok {
			assert.Equal(t, r, sr.Range, sr.System)
			assert.Equal(t, r.Max-r.Min+1, sr.Checked, sr.System)
		}
		assert.True(t, sr.Passed(), sr.System)
	}
}

func TestRunSkipsDisjointRange(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Systems: []numeral.ID{numeral.Roman, numeral.Mayan},
		Range:   &numeral.Range{Min: 5000, Max: 5010},
	})
	require.NoError(t, err)
	require.Len(t, report.Systems, 1)
	assert.Equal(t, numeral.Mayan, report.Systems[0].System)
	assert.Equal(t, 11, report.Systems[0].Checked)
}

func TestRunUnknownSystem(t *testing.T) {
	_, err := Run(context.Background(), Options{Systems: []numeral.ID{"etruscan"}})
	assert.ErrorContains(t, err, "unknown system")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Systems: []numeral.ID{numeral.Egyptian}, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
