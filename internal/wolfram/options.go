package wolfram

import (
	"regexp"
	"strings"
)

// Units selects the measurement system used in answers.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Layout selects how the simple endpoint arranges pods.
type Layout string

const (
	LayoutDivider  Layout = "divider"
	LayoutLabelBar Layout = "labelbar"
)

// Foreground selects the simple endpoint's text colour.
type Foreground string

const (
	ForegroundWhite Foreground = "white"
	ForegroundBlack Foreground = "black"
)

// Format names a pod output format of the full query endpoint.
type Format string

const (
	FormatImage     Format = "image"
	FormatImageMap  Format = "imagemap"
	FormatPlainText Format = "plaintext"
	FormatMInput    Format = "minput"
	FormatMOutput   Format = "moutput"
	FormatCell      Format = "cell"
	FormatMathML    Format = "mathml"
	FormatSound     Format = "sound"
	FormatWav       Format = "wav"
)

var knownFormats = map[Format]bool{
	FormatImage:     true,
	FormatImageMap:  true,
	FormatPlainText: true,
	FormatMInput:    true,
	FormatMOutput:   true,
	FormatCell:      true,
	FormatMathML:    true,
	FormatSound:     true,
	FormatWav:       true,
}

// ParseUnits accepts "metric" or "imperial" in any case. Empty is allowed.
func ParseUnits(value string) (Units, error) {
	u := Units(strings.ToLower(strings.TrimSpace(value)))
	if err := validateUnits(u); err != nil {
		return "", err
	}
	return u, nil
}

// ParseFormats splits a comma separated format list.
func ParseFormats(value string) ([]Format, error) {
	var formats []Format
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		f := Format(part)
		if !knownFormats[f] {
			return nil, &OptionError{Option: "format", Value: part, Reason: "unknown format"}
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// SimpleOptions configures /v1/simple requests.
type SimpleOptions struct {
	Layout     Layout
	Background string
	Foreground Foreground
	FontSize   int
	Width      int
	Units      Units
	Timeout    int // seconds, forwarded to the API
}

var colorPattern = regexp.MustCompile(`^([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[A-Za-z]+)$`)

// Validate checks every set field.
func (o SimpleOptions) Validate() error {
	switch o.Layout {
	case "", LayoutDivider, LayoutLabelBar:
	default:
		return &OptionError{Option: "layout", Value: o.Layout, Reason: "want divider or labelbar"}
	}
	if o.Background != "" && !colorPattern.MatchString(o.Background) {
		return &OptionError{Option: "background", Value: o.Background, Reason: "want a colour name or hex value"}
	}
	switch o.Foreground {
	case "", ForegroundWhite, ForegroundBlack:
	default:
		return &OptionError{Option: "foreground", Value: o.Foreground, Reason: "want white or black"}
	}
	if o.FontSize < 0 {
		return &OptionError{Option: "fontsize", Value: o.FontSize, Reason: "must be positive"}
	}
	if o.Width < 0 {
		return &OptionError{Option: "width", Value: o.Width, Reason: "must be positive"}
	}
	if err := validateUnits(o.Units); err != nil {
		return err
	}
	return validateTimeout("timeout", o.Timeout)
}

func (o SimpleOptions) record() Record {
	var r Record
	if o.Layout != "" {
		r.Set("layout", string(o.Layout))
	}
	if o.Background != "" {
		r.Set("background", o.Background)
	}
	if o.Foreground != "" {
		r.Set("foreground", string(o.Foreground))
	}
	if o.FontSize > 0 {
		r.Set("fontsize", o.FontSize)
	}
	if o.Width > 0 {
		r.Set("width", o.Width)
	}
	if o.Units != "" {
		r.Set("units", string(o.Units))
	}
	if o.Timeout > 0 {
		r.Set("timeout", o.Timeout)
	}
	return r
}

// AnswerOptions configures the short answer and spoken endpoints.
type AnswerOptions struct {
	Units   Units
	Timeout int // seconds, forwarded to the API
}

// Validate checks every set field.
func (o AnswerOptions) Validate() error {
	if err := validateUnits(o.Units); err != nil {
		return err
	}
	return validateTimeout("timeout", o.Timeout)
}

func (o AnswerOptions) record() Record {
	var r Record
	if o.Units != "" {
		r.Set("units", string(o.Units))
	}
	if o.Timeout > 0 {
		r.Set("timeout", o.Timeout)
	}
	return r
}

// Location overrides the caller location the API assumes.
type Location struct {
	IP       string
	LatLong  string
	Location string
}

// Size controls image sizing in full query results.
type Size struct {
	Width     int
	MaxWidth  int
	PlotWidth int
	Mag       float64
}

// FullOptions configures /v2/query requests. Output is always JSON.
type FullOptions struct {
	Formats       []Format
	IncludePodIDs []string
	ExcludePodIDs []string
	PodTitles     []string
	Location      Location
	Size          Size
	Reinterpret   bool
	Translation   bool
	IgnoreCase    bool
	Units         Units
	Timeout       int // seconds, sent as totaltimeout
}

var latLongPattern = regexp.MustCompile(`^-?\d+(\.\d+)?,\s*-?\d+(\.\d+)?$`)

// Validate checks every set field.
func (o FullOptions) Validate() error {
	for _, f := range o.Formats {
		if !knownFormats[f] {
			return &OptionError{Option: "format", Value: f, Reason: "unknown format"}
		}
	}
	if o.Location.LatLong != "" && !latLongPattern.MatchString(o.Location.LatLong) {
		return &OptionError{Option: "latlong", Value: o.Location.LatLong, Reason: "want \"lat,long\""}
	}
	for _, dim := range []struct {
		name  string
		value int
	}{{"width", o.Size.Width}, {"maxwidth", o.Size.MaxWidth}, {"plotwidth", o.Size.PlotWidth}} {
		if dim.value < 0 {
			return &OptionError{Option: dim.name, Value: dim.value, Reason: "must be positive"}
		}
	}
	if o.Size.Mag < 0 {
		return &OptionError{Option: "mag", Value: o.Size.Mag, Reason: "must be positive"}
	}
	if err := validateUnits(o.Units); err != nil {
		return err
	}
	return validateTimeout("totaltimeout", o.Timeout)
}

func (o FullOptions) record() Record {
	var r Record
	if len(o.Formats) > 0 {
		names := make([]string, len(o.Formats))
		for i, f := range o.Formats {
			names[i] = string(f)
		}
		r.Set("format", strings.Join(names, ","))
	}
	if len(o.IncludePodIDs) > 0 {
		r.Set("includepodid", o.IncludePodIDs)
	}
	if len(o.ExcludePodIDs) > 0 {
		r.Set("excludepodid", o.ExcludePodIDs)
	}
	if len(o.PodTitles) > 0 {
		r.Set("podtitle", o.PodTitles)
	}
	if o.Location.IP != "" {
		r.Set("ip", o.Location.IP)
	}
	if o.Location.LatLong != "" {
		r.Set("latlong", o.Location.LatLong)
	}
	if o.Location.Location != "" {
		r.Set("location", o.Location.Location)
	}
	if o.Size.Width > 0 {
		r.Set("width", o.Size.Width)
	}
	if o.Size.MaxWidth > 0 {
		r.Set("maxwidth", o.Size.MaxWidth)
	}
	if o.Size.PlotWidth > 0 {
		r.Set("plotwidth", o.Size.PlotWidth)
	}
	if o.Size.Mag > 0 {
		r.Set("mag", o.Size.Mag)
	}
	if o.Reinterpret {
		r.Set("reinterpret", true)
	}
	if o.Translation {
		r.Set("translation", true)
	}
	if o.IgnoreCase {
		r.Set("ignorecase", true)
	}
	if o.Units != "" {
		r.Set("units", string(o.Units))
	}
	if o.Timeout > 0 {
		r.Set("totaltimeout", o.Timeout)
	}
	return r
}

func validateUnits(u Units) error {
	switch u {
	case "", UnitsMetric, UnitsImperial:
		return nil
	default:
		return &OptionError{Option: "units", Value: u, Reason: "want metric or imperial"}
	}
}

func validateTimeout(name string, seconds int) error {
	if seconds < 0 {
		return &OptionError{Option: name, Value: seconds, Reason: "must be positive"}
	}
	return nil
}
