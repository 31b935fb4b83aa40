package forecast

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Icon names the display icon for a set of weather conditions.
type Icon int

const (
	IconClearDay Icon = iota
	IconClearNight
	IconRain
	IconSnow
	IconSleet
	IconWind
	IconFog
	IconCloudy
	IconPartlyCloudyDay
	IconPartlyCloudyNight
	IconHail
	IconThunderstorm
	IconTornado
)

var iconTokens = map[Icon]string{
	IconClearDay:          "clear-day",
	IconClearNight:        "clear-night",
	IconRain:              "rain",
	IconSnow:              "snow",
	IconSleet:             "sleet",
	IconWind:              "wind",
	IconFog:               "fog",
	IconCloudy:            "cloudy",
	IconPartlyCloudyDay:   "partly-cloudy-day",
	IconPartlyCloudyNight: "partly-cloudy-night",
	IconHail:              "hail",
	IconThunderstorm:      "thunderstorm",
	IconTornado:           "tornado",
}

var iconValues = make(map[string]Icon, len(iconTokens))

func init() {
	for icon, token := range iconTokens {
		iconValues[token] = icon
	}
}

// String returns the bare wire token for the icon.
func (i Icon) String() string {
	return iconTokens[i]
}

// ParseIcon decodes a wire token into an Icon.
func ParseIcon(token string) (Icon, error) {
	i, ok := iconValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "icon", Token: token}
	}
	return i, nil
}

func (i Icon) MarshalText() ([]byte, error) {
	token, ok := iconTokens[i]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "icon", Token: ""}
	}
	return []byte(token), nil
}

func (i *Icon) UnmarshalText(text []byte) error {
	parsed, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// PrecipType names the kind of precipitation occurring at a particular time.
type PrecipType int

const (
	PrecipRain PrecipType = iota
	PrecipSnow
	PrecipSleet
)

var precipTypeTokens = map[PrecipType]string{
	PrecipRain:  "rain",
	PrecipSnow:  "snow",
	PrecipSleet: "sleet",
}

var precipTypeValues = map[string]PrecipType{
	"rain":  PrecipRain,
	"snow":  PrecipSnow,
	"sleet": PrecipSleet,
}

// String returns the bare wire token for the precipitation kind.
func (p PrecipType) String() string {
	return precipTypeTokens[p]
}

// ParsePrecipType decodes a wire token into a PrecipType.
func ParsePrecipType(token string) (PrecipType, error) {
	p, ok := precipTypeValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "precip type", Token: token}
	}
	return p, nil
}

func (p PrecipType) MarshalText() ([]byte, error) {
	token, ok := precipTypeTokens[p]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "precip type", Token: ""}
	}
	return []byte(token), nil
}

func (p *PrecipType) UnmarshalText(text []byte) error {
	parsed, err := ParsePrecipType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DataPoint holds the weather phenomena occurring at a particular time, or
// their averages over a period. Every field except Time is optional.
type DataPoint struct {
	ApparentTemperature         *float64 `json:"apparentTemperature,omitempty"`
	ApparentTemperatureHigh     *float64 `json:"apparentTemperatureHigh,omitempty"`
	ApparentTemperatureHighTime *uint64  `json:"apparentTemperatureHighTime,omitempty"`
	ApparentTemperatureLow      *float64 `json:"apparentTemperatureLow,omitempty"`
	ApparentTemperatureLowTime  *uint64  `json:"apparentTemperatureLowTime,omitempty"`

	// Deprecated: superseded by ApparentTemperatureHigh.
	ApparentTemperatureMax *float64 `json:"apparentTemperatureMax,omitempty"`
	// Deprecated: superseded by ApparentTemperatureHighTime.
	ApparentTemperatureMaxTime *uint64 `json:"apparentTemperatureMaxTime,omitempty"`
	// Deprecated: superseded by ApparentTemperatureLow.
	ApparentTemperatureMin *float64 `json:"apparentTemperatureMin,omitempty"`
	// Deprecated: superseded by ApparentTemperatureLowTime.
	ApparentTemperatureMinTime *uint64 `json:"apparentTemperatureMinTime,omitempty"`

	CloudCover             *float64    `json:"cloudCover,omitempty"`
	DewPoint               *float64    `json:"dewPoint,omitempty"`
	Humidity               *float64    `json:"humidity,omitempty"`
	Icon                   *Icon       `json:"icon,omitempty"`
	MoonPhase              *float64    `json:"moonPhase,omitempty"`
	NearestStormBearing    *float64    `json:"nearestStormBearing,omitempty"`
	NearestStormDistance   *float64    `json:"nearestStormDistance,omitempty"`
	Ozone                  *float64    `json:"ozone,omitempty"`
	PrecipAccumulation     *float64    `json:"precipAccumulation,omitempty"`
	PrecipIntensity        *float64    `json:"precipIntensity,omitempty"`
	PrecipIntensityMax     *float64    `json:"precipIntensityMax,omitempty"`
	PrecipIntensityMaxTime *uint64     `json:"precipIntensityMaxTime,omitempty"`
	PrecipProbability      *float64    `json:"precipProbability,omitempty"`
	PrecipType             *PrecipType `json:"precipType,omitempty"`
	Pressure               *float64    `json:"pressure,omitempty"`
	Summary                *string     `json:"summary,omitempty"`
	SunriseTime            *uint64     `json:"sunriseTime,omitempty"`
	SunsetTime             *uint64     `json:"sunsetTime,omitempty"`
	Temperature            *float64    `json:"temperature,omitempty"`
	TemperatureHigh        *float64    `json:"temperatureHigh,omitempty"`
	TemperatureHighTime    *uint64     `json:"temperatureHighTime,omitempty"`
	TemperatureLow         *float64    `json:"temperatureLow,omitempty"`
	TemperatureLowTime     *uint64     `json:"temperatureLowTime,omitempty"`

	// Deprecated: superseded by TemperatureHigh.
	TemperatureMax *float64 `json:"temperatureMax,omitempty"`
	// Deprecated: superseded by TemperatureHighTime.
	TemperatureMaxTime *uint64 `json:"temperatureMaxTime,omitempty"`
	// Deprecated: superseded by TemperatureLow.
	TemperatureMin *float64 `json:"temperatureMin,omitempty"`
	// Deprecated: superseded by TemperatureLowTime.
	TemperatureMinTime *uint64 `json:"temperatureMinTime,omitempty"`

	Time         uint64   `json:"time"`
	UVIndex      *float64 `json:"uvIndex,omitempty"`
	UVIndexTime  *uint64  `json:"uvIndexTime,omitempty"`
	Visibility   *float64 `json:"visibility,omitempty"`
	WindBearing  *float64 `json:"windBearing,omitempty"`
	WindGust     *float64 `json:"windGust,omitempty"`
	WindGustTime *uint64  `json:"windGustTime,omitempty"`
	WindSpeed    *float64 `json:"windSpeed,omitempty"`
}

// DataBlock groups the weather phenomena occurring over a period of time.
type DataBlock struct {
	Data    []DataPoint `json:"data"`
	Summary *string     `json:"summary,omitempty"`
	Icon    *Icon       `json:"icon,omitempty"`
}

// Alert is a severe weather warning issued by a government authority for the
// requested location.
type Alert struct {
	Description string   `json:"description"`
	Expires     uint64   `json:"expires"`
	Regions     []string `json:"regions"`
	Severity    Severity `json:"severity"`
	Time        uint64   `json:"time"`
	Title       string   `json:"title"`
	URI         string   `json:"uri"`
}

// Flags carries miscellaneous metadata about a request.
type Flags struct {
	DarkSkyUnavailable *string  `json:"darksky-unavailable,omitempty"`
	Sources            []string `json:"sources"`
	Units              Units    `json:"units"`
}

// APIResponse is the payload of both the forecast and the time machine
// endpoints. Which of the optional sections are present depends on the
// requested location and the exclude parameter.
type APIResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`

	// Deprecated: use the timezone name instead.
	Offset int64 `json:"offset"`

	Currently *DataPoint `json:"currently,omitempty"`
	Minutely  *DataBlock `json:"minutely,omitempty"`
	Hourly    *DataBlock `json:"hourly,omitempty"`
	Daily     *DataBlock `json:"daily,omitempty"`
	Alerts    []Alert    `json:"alerts,omitempty"`
	Flags     *Flags     `json:"flags,omitempty"`
}

// DecodeResponse reads and decodes an API response body. The client itself
// never touches bodies; this is a convenience for callers.
func DecodeResponse(r io.Reader) (*APIResponse, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var response APIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}
	return &response, nil
}
