package forecast

// The request and alert enums are closed sets with a stable wire token per
// variant. Each one keeps an explicit bidirectional lookup table so the wire
// contract is visible here and testable without going through a JSON
// round-trip; the TextMarshaler/TextUnmarshaler implementations are thin
// adapters over the same tables.

// ExcludeBlock identifies a section of the response that the caller wants
// omitted.
type ExcludeBlock int

const (
	ExcludeCurrently ExcludeBlock = iota
	ExcludeMinutely
	ExcludeHourly
	ExcludeDaily
	ExcludeAlerts
	ExcludeFlags
)

var excludeBlockTokens = map[ExcludeBlock]string{
	ExcludeCurrently: "currently",
	ExcludeMinutely:  "minutely",
	ExcludeHourly:    "hourly",
	ExcludeDaily:     "daily",
	ExcludeAlerts:    "alerts",
	ExcludeFlags:     "flags",
}

var excludeBlockValues = map[string]ExcludeBlock{
	"currently": ExcludeCurrently,
	"minutely":  ExcludeMinutely,
	"hourly":    ExcludeHourly,
	"daily":     ExcludeDaily,
	"alerts":    ExcludeAlerts,
	"flags":     ExcludeFlags,
}

// String returns the bare wire token for the block.
func (b ExcludeBlock) String() string {
	return excludeBlockTokens[b]
}

// ParseExcludeBlock decodes a wire token into an ExcludeBlock.
func ParseExcludeBlock(token string) (ExcludeBlock, error) {
	b, ok := excludeBlockValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "exclude block", Token: token}
	}
	return b, nil
}

func (b ExcludeBlock) MarshalText() ([]byte, error) {
	token, ok := excludeBlockTokens[b]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "exclude block", Token: ""}
	}
	return []byte(token), nil
}

func (b *ExcludeBlock) UnmarshalText(text []byte) error {
	parsed, err := ParseExcludeBlock(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ExtendBy widens the time window of the response data. Hourly is the only
// value the API accepts today; the enum keeps the wire contract open for
// future values.
type ExtendBy int

const (
	ExtendHourly ExtendBy = iota
)

var extendByTokens = map[ExtendBy]string{
	ExtendHourly: "hourly",
}

var extendByValues = map[string]ExtendBy{
	"hourly": ExtendHourly,
}

// String returns the bare wire token for the extension.
func (e ExtendBy) String() string {
	return extendByTokens[e]
}

// ParseExtendBy decodes a wire token into an ExtendBy.
func ParseExtendBy(token string) (ExtendBy, error) {
	e, ok := extendByValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "extend", Token: token}
	}
	return e, nil
}

func (e ExtendBy) MarshalText() ([]byte, error) {
	token, ok := extendByTokens[e]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "extend", Token: ""}
	}
	return []byte(token), nil
}

func (e *ExtendBy) UnmarshalText(text []byte) error {
	parsed, err := ParseExtendBy(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Units selects the measurement system for response data.
type Units int

const (
	UnitsAuto Units = iota
	UnitsCA
	UnitsUK
	UnitsImperial
	UnitsSI
)

var unitsTokens = map[Units]string{
	UnitsAuto:     "auto",
	UnitsCA:       "ca",
	UnitsUK:       "uk2",
	UnitsImperial: "us",
	UnitsSI:       "si",
}

var unitsValues = map[string]Units{
	"auto": UnitsAuto,
	"ca":   UnitsCA,
	"uk2":  UnitsUK,
	"us":   UnitsImperial,
	"si":   UnitsSI,
}

// String returns the bare wire token for the measurement system.
func (u Units) String() string {
	return unitsTokens[u]
}

// ParseUnits decodes a wire token into a Units value.
func ParseUnits(token string) (Units, error) {
	u, ok := unitsValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "units", Token: token}
	}
	return u, nil
}

func (u Units) MarshalText() ([]byte, error) {
	token, ok := unitsTokens[u]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "units", Token: ""}
	}
	return []byte(token), nil
}

func (u *Units) UnmarshalText(text []byte) error {
	parsed, err := ParseUnits(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Severity grades a weather alert. It appears only in response payloads,
// never in request parameters.
type Severity int

const (
	SeverityAdvisory Severity = iota
	SeverityWatch
	SeverityWarning
)

var severityTokens = map[Severity]string{
	SeverityAdvisory: "advisory",
	SeverityWatch:    "watch",
	SeverityWarning:  "warning",
}

var severityValues = map[string]Severity{
	"advisory": SeverityAdvisory,
	"watch":    SeverityWatch,
	"warning":  SeverityWarning,
}

// String returns the bare wire token for the severity.
func (s Severity) String() string {
	return severityTokens[s]
}

// ParseSeverity decodes a wire token into a Severity.
func ParseSeverity(token string) (Severity, error) {
	s, ok := severityValues[token]
	if !ok {
		return 0, &UnrecognizedTokenError{Kind: "severity", Token: token}
	}
	return s, nil
}

func (s Severity) MarshalText() ([]byte, error) {
	token, ok := severityTokens[s]
	if !ok {
		return nil, &UnrecognizedTokenError{Kind: "severity", Token: ""}
	}
	return []byte(token), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
