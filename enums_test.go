package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludeBlockRoundTrip(t *testing.T) {
	for block, token := range excludeBlockTokens {
		parsed, err := ParseExcludeBlock(block.String())
		require.NoError(t, err)
		assert.Equal(t, block, parsed, "token %q", token)
	}
}

func TestExtendByRoundTrip(t *testing.T) {
	for extend := range extendByTokens {
		parsed, err := ParseExtendBy(extend.String())
		require.NoError(t, err)
		assert.Equal(t, extend, parsed)
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	for units := range unitsTokens {
		parsed, err := ParseUnits(units.String())
		require.NoError(t, err)
		assert.Equal(t, units, parsed)
	}
}

func TestSeverityRoundTrip(t *testing.T) {
	for severity := range severityTokens {
		parsed, err := ParseSeverity(severity.String())
		require.NoError(t, err)
		assert.Equal(t, severity, parsed)
	}
}

func TestUnitsRenamedTokens(t *testing.T) {
	// The wire tokens that differ from the variant names.
	assert.Equal(t, "uk2", UnitsUK.String())
	assert.Equal(t, "us", UnitsImperial.String())
}

func TestParseUnrecognizedToken(t *testing.T) {
	_, err := ParseUnits("metric")
	require.Error(t, err)

	var tokenErr *UnrecognizedTokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "units", tokenErr.Kind)
	assert.Equal(t, "metric", tokenErr.Token)

	_, err = ParseExcludeBlock("")
	assert.Error(t, err)

	_, err = ParseExtendBy("daily")
	assert.Error(t, err)

	_, err = ParseSeverity("catastrophe")
	assert.Error(t, err)
}

func TestMarshalTextEmitsBareToken(t *testing.T) {
	// The encoded form is the bare token, no quoting of any kind.
	text, err := ExcludeAlerts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "alerts", string(text))

	text, err = UnitsImperial.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "us", string(text))
}
