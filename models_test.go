package forecast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"latitude": 6.66,
	"longitude": 66.6,
	"timezone": "Etc/GMT",
	"offset": 0,
	"currently": {
		"time": 1470000000,
		"summary": "Partly Cloudy",
		"icon": "partly-cloudy-day",
		"temperature": 21.3,
		"precipType": "rain",
		"precipProbability": 0.35,
		"windSpeed": 4.2
	},
	"daily": {
		"summary": "Light rain throughout the week.",
		"icon": "rain",
		"data": [
			{"time": 1470000000, "temperatureHigh": 24.1, "temperatureLow": 15.7},
			{"time": 1470086400, "temperatureHigh": 22.8, "temperatureLow": 14.9}
		]
	},
	"alerts": [
		{
			"description": "Gale warning in effect.",
			"expires": 1470020000,
			"regions": ["Coastal waters"],
			"severity": "warning",
			"time": 1470000000,
			"title": "Gale Warning",
			"uri": "https://alerts.example/gale"
		}
	],
	"flags": {
		"sources": ["gfs", "isd"],
		"units": "us"
	}
}`

func TestDecodeResponse(t *testing.T) {
	payload, err := DecodeResponse(strings.NewReader(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, 6.66, payload.Latitude)
	assert.Equal(t, 66.6, payload.Longitude)
	assert.Equal(t, "Etc/GMT", payload.Timezone)

	require.NotNil(t, payload.Currently)
	require.NotNil(t, payload.Currently.Temperature)
	assert.Equal(t, 21.3, *payload.Currently.Temperature)
	require.NotNil(t, payload.Currently.Icon)
	assert.Equal(t, IconPartlyCloudyDay, *payload.Currently.Icon)
	require.NotNil(t, payload.Currently.PrecipType)
	assert.Equal(t, PrecipRain, *payload.Currently.PrecipType)

	require.NotNil(t, payload.Daily)
	assert.Len(t, payload.Daily.Data, 2)
	require.NotNil(t, payload.Daily.Icon)
	assert.Equal(t, IconRain, *payload.Daily.Icon)

	require.Len(t, payload.Alerts, 1)
	assert.Equal(t, SeverityWarning, payload.Alerts[0].Severity)
	assert.Equal(t, "Gale Warning", payload.Alerts[0].Title)

	require.NotNil(t, payload.Flags)
	assert.Equal(t, UnitsImperial, payload.Flags.Units)
	assert.Nil(t, payload.Flags.DarkSkyUnavailable)

	// Excluded sections simply stay absent.
	assert.Nil(t, payload.Minutely)
	assert.Nil(t, payload.Hourly)
}

func TestDecodeResponseInvalidJSON(t *testing.T) {
	_, err := DecodeResponse(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestResponseEnumsReencode(t *testing.T) {
	payload, err := DecodeResponse(strings.NewReader(sampleResponse))
	require.NoError(t, err)

	out, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"icon":"partly-cloudy-day"`)
	assert.Contains(t, string(out), `"severity":"warning"`)
	assert.Contains(t, string(out), `"units":"us"`)
}

func TestIconRoundTrip(t *testing.T) {
	for icon := range iconTokens {
		parsed, err := ParseIcon(icon.String())
		require.NoError(t, err)
		assert.Equal(t, icon, parsed)
	}

	_, err := ParseIcon("meteor-shower")
	assert.Error(t, err)
}

func TestPrecipTypeRoundTrip(t *testing.T) {
	for precip := range precipTypeTokens {
		parsed, err := ParsePrecipType(precip.String())
		require.NoError(t, err)
		assert.Equal(t, precip, parsed)
	}

	_, err := ParsePrecipType("hail")
	assert.Error(t, err)
}

func TestUnrecognizedEnumInPayloadFailsDecode(t *testing.T) {
	// Decode failures never silently default.
	_, err := DecodeResponse(strings.NewReader(`{"currently": {"time": 1, "icon": "volcano"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volcano")
}
