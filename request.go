package forecast

import (
	"fmt"
	"net/url"
	"strconv"
)

const forecastURL = "https://api.pirateweather.net/forecast"

// Query parameter names, in the order the API documents them.
const (
	paramExclude = "exclude"
	paramExtend  = "extend"
	paramLang    = "lang"
	paramUnits   = "units"
)

// coordinatePrecision is the number of fractional digits coordinates are
// rendered with in the request path. The API treats this as part of the wire
// contract, so identical inputs always produce byte-identical URLs.
const coordinatePrecision = 16

func formatCoordinate(c float64) string {
	return strconv.FormatFloat(c, 'f', coordinatePrecision, 64)
}

// parseBuiltURL validates a finished URL string. A failure means the builder
// inputs violated an invariant; that is not recoverable, so it panics.
func parseBuiltURL(rawURL string) string {
	if _, err := url.Parse(rawURL); err != nil {
		panic(&MalformedURLError{URL: rawURL, Err: err})
	}
	return rawURL
}

// ForecastRequest is a finalized, immutable request against the forecast
// endpoint. Its URL is computed once, at build time.
type ForecastRequest struct {
	apiKey    string
	latitude  float64
	longitude float64
	url       string
	exclude   []ExcludeBlock
	extend    *ExtendBy
	lang      *Lang
	units     *Units
}

// URL returns the precomputed request URL.
func (r *ForecastRequest) URL() string { return r.url }

// APIKey returns the API key the request was built with.
func (r *ForecastRequest) APIKey() string { return r.apiKey }

// Latitude returns the request latitude.
func (r *ForecastRequest) Latitude() float64 { return r.latitude }

// Longitude returns the request longitude.
func (r *ForecastRequest) Longitude() float64 { return r.longitude }

// Exclude returns the excluded blocks in the order they were added,
// duplicates included. The returned slice is a copy.
func (r *ForecastRequest) Exclude() []ExcludeBlock {
	out := make([]ExcludeBlock, len(r.exclude))
	copy(out, r.exclude)
	return out
}

// Extend reports the extend option, if set.
func (r *ForecastRequest) Extend() (ExtendBy, bool) {
	if r.extend == nil {
		return 0, false
	}
	return *r.extend, true
}

// Lang reports the lang option, if set.
func (r *ForecastRequest) Lang() (Lang, bool) {
	if r.lang == nil {
		return 0, false
	}
	return *r.lang, true
}

// Units reports the units option, if set.
func (r *ForecastRequest) Units() (Units, bool) {
	if r.units == nil {
		return 0, false
	}
	return *r.units, true
}

// ForecastRequestBuilder accumulates the optional parameters of a forecast
// request. Configuration calls return the builder for chaining; the last
// call for a single-valued field wins. Build finalizes the request.
type ForecastRequestBuilder struct {
	apiKey    string
	latitude  float64
	longitude float64
	exclude   []ExcludeBlock
	extend    *ExtendBy
	lang      *Lang
	units     *Units
}

// NewForecastRequestBuilder starts a forecast request from its required
// fields.
func NewForecastRequestBuilder(apiKey string, latitude, longitude float64) *ForecastRequestBuilder {
	return &ForecastRequestBuilder{
		apiKey:    apiKey,
		latitude:  latitude,
		longitude: longitude,
	}
}

// ExcludeBlock appends one block to exclude from the response. Repeated
// calls append; duplicates are preserved.
func (b *ForecastRequestBuilder) ExcludeBlock(block ExcludeBlock) *ForecastRequestBuilder {
	b.exclude = append(b.exclude, block)
	return b
}

// ExcludeBlocks appends every block from the given slice and drains it: after
// the call the caller's slice has length zero.
func (b *ForecastRequestBuilder) ExcludeBlocks(blocks *[]ExcludeBlock) *ForecastRequestBuilder {
	b.exclude = append(b.exclude, *blocks...)
	*blocks = (*blocks)[:0]
	return b
}

// Extend widens the response time window.
func (b *ForecastRequestBuilder) Extend(extend ExtendBy) *ForecastRequestBuilder {
	b.extend = &extend
	return b
}

// Lang sets the language for summary fields in the response.
func (b *ForecastRequestBuilder) Lang(lang Lang) *ForecastRequestBuilder {
	b.lang = &lang
	return b
}

// Units sets the measurement system for the response.
func (b *ForecastRequestBuilder) Units(units Units) *ForecastRequestBuilder {
	b.units = &units
	return b
}

// Build finalizes the request, computing its URL. It panics with a
// *MalformedURLError if the resulting URL is syntactically invalid, which
// cannot happen for well-formed inputs.
func (b *ForecastRequestBuilder) Build() *ForecastRequest {
	return &ForecastRequest{
		apiKey:    b.apiKey,
		latitude:  b.latitude,
		longitude: b.longitude,
		url:       parseBuiltURL(b.buildURL()),
		exclude:   append([]ExcludeBlock(nil), b.exclude...),
		extend:    b.extend,
		lang:      b.lang,
		units:     b.units,
	}
}

func (b *ForecastRequestBuilder) buildURL() string {
	rawURL := fmt.Sprintf("%s/%s/%s,%s",
		forecastURL,
		b.apiKey,
		formatCoordinate(b.latitude),
		formatCoordinate(b.longitude),
	)

	var query queryBuilder
	query.addList(paramExclude, excludeTokens(b.exclude))
	if b.extend != nil {
		query.add(paramExtend, b.extend.String())
	}
	if b.lang != nil {
		query.add(paramLang, b.lang.String())
	}
	if b.units != nil {
		query.add(paramUnits, b.units.String())
	}

	if qs := query.encode(); qs != "" {
		rawURL += "?" + qs
	}
	return rawURL
}

// TimeMachineRequest is a finalized, immutable request against the
// point-in-time endpoint.
type TimeMachineRequest struct {
	apiKey    string
	latitude  float64
	longitude float64
	time      int64
	url       string
	exclude   []ExcludeBlock
	lang      *Lang
	units     *Units
}

// URL returns the precomputed request URL.
func (r *TimeMachineRequest) URL() string { return r.url }

// APIKey returns the API key the request was built with.
func (r *TimeMachineRequest) APIKey() string { return r.apiKey }

// Latitude returns the request latitude.
func (r *TimeMachineRequest) Latitude() float64 { return r.latitude }

// Longitude returns the request longitude.
func (r *TimeMachineRequest) Longitude() float64 { return r.longitude }

// Time returns the request's epoch timestamp.
func (r *TimeMachineRequest) Time() int64 { return r.time }

// Exclude returns the excluded blocks in the order they were added,
// duplicates included. The returned slice is a copy.
func (r *TimeMachineRequest) Exclude() []ExcludeBlock {
	out := make([]ExcludeBlock, len(r.exclude))
	copy(out, r.exclude)
	return out
}

// Lang reports the lang option, if set.
func (r *TimeMachineRequest) Lang() (Lang, bool) {
	if r.lang == nil {
		return 0, false
	}
	return *r.lang, true
}

// Units reports the units option, if set.
func (r *TimeMachineRequest) Units() (Units, bool) {
	if r.units == nil {
		return 0, false
	}
	return *r.units, true
}

// TimeMachineRequestBuilder accumulates the optional parameters of a
// point-in-time request. Unlike the forecast endpoint there is no extend
// option.
type TimeMachineRequestBuilder struct {
	apiKey    string
	latitude  float64
	longitude float64
	time      int64
	exclude   []ExcludeBlock
	lang      *Lang
	units     *Units
}

// NewTimeMachineRequestBuilder starts a point-in-time request from its
// required fields; time is an epoch timestamp in seconds.
func NewTimeMachineRequestBuilder(apiKey string, latitude, longitude float64, time int64) *TimeMachineRequestBuilder {
	return &TimeMachineRequestBuilder{
		apiKey:    apiKey,
		latitude:  latitude,
		longitude: longitude,
		time:      time,
	}
}

// ExcludeBlock appends one block to exclude from the response. Repeated
// calls append; duplicates are preserved.
func (b *TimeMachineRequestBuilder) ExcludeBlock(block ExcludeBlock) *TimeMachineRequestBuilder {
	b.exclude = append(b.exclude, block)
	return b
}

// ExcludeBlocks appends every block from the given slice and drains it: after
// the call the caller's slice has length zero.
func (b *TimeMachineRequestBuilder) ExcludeBlocks(blocks *[]ExcludeBlock) *TimeMachineRequestBuilder {
	b.exclude = append(b.exclude, *blocks...)
	*blocks = (*blocks)[:0]
	return b
}

// Lang sets the language for summary fields in the response.
func (b *TimeMachineRequestBuilder) Lang(lang Lang) *TimeMachineRequestBuilder {
	b.lang = &lang
	return b
}

// Units sets the measurement system for the response.
func (b *TimeMachineRequestBuilder) Units(units Units) *TimeMachineRequestBuilder {
	b.units = &units
	return b
}

// Build finalizes the request, computing its URL. It panics with a
// *MalformedURLError if the resulting URL is syntactically invalid, which
// cannot happen for well-formed inputs.
func (b *TimeMachineRequestBuilder) Build() *TimeMachineRequest {
	return &TimeMachineRequest{
		apiKey:    b.apiKey,
		latitude:  b.latitude,
		longitude: b.longitude,
		time:      b.time,
		url:       parseBuiltURL(b.buildURL()),
		exclude:   append([]ExcludeBlock(nil), b.exclude...),
		lang:      b.lang,
		units:     b.units,
	}
}

func (b *TimeMachineRequestBuilder) buildURL() string {
	rawURL := fmt.Sprintf("%s/%s/%s,%s,%d",
		forecastURL,
		b.apiKey,
		formatCoordinate(b.latitude),
		formatCoordinate(b.longitude),
		b.time,
	)

	var query queryBuilder
	query.addList(paramExclude, excludeTokens(b.exclude))
	if b.lang != nil {
		query.add(paramLang, b.lang.String())
	}
	if b.units != nil {
		query.add(paramUnits, b.units.String())
	}

	if qs := query.encode(); qs != "" {
		rawURL += "?" + qs
	}
	return rawURL
}

func excludeTokens(blocks []ExcludeBlock) []string {
	if len(blocks) == 0 {
		return nil
	}
	tokens := make([]string, len(blocks))
	for i, b := range blocks {
		tokens[i] = b.String()
	}
	return tokens
}
