package gateway

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/five82/wolfy/internal/wolfram"
)

// queryReader pulls typed values out of the request query, keeping the
// first conversion error.
type queryReader struct {
	c   *gin.Context
	err error
}

func (r *queryReader) str(name string) string {
	return strings.TrimSpace(r.c.Query(name))
}

func (r *queryReader) list(name string) []string {
	var out []string
	for _, v := range r.c.QueryArray(name) {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r *queryReader) intValue(name string) int {
	raw := r.str(name)
	if raw == "" || r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.err = &wolfram.OptionError{Option: name, Value: raw, Reason: "must be an integer"}
		return 0
	}
	return n
}

func (r *queryReader) floatValue(name string) float64 {
	raw := r.str(name)
	if raw == "" || r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.err = &wolfram.OptionError{Option: name, Value: raw, Reason: "must be a number"}
		return 0
	}
	return f
}

func (r *queryReader) boolValue(name string) bool {
	raw := r.str(name)
	if raw == "" || r.err != nil {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		r.err = &wolfram.OptionError{Option: name, Value: raw, Reason: "must be true or false"}
		return false
	}
	return b
}

func (r *queryReader) units() wolfram.Units {
	raw := r.str("units")
	if r.err != nil {
		return ""
	}
	u, err := wolfram.ParseUnits(raw)
	if err != nil {
		r.err = err
	}
	return u
}

// input returns the query text, accepting either spelling of the parameter.
func (r *queryReader) input(primary, alternate string) string {
	if v := r.str(primary); v != "" {
		return v
	}
	return r.str(alternate)
}

func parseSimpleOptions(c *gin.Context) (wolfram.SimpleOptions, error) {
	r := &queryReader{c: c}
	opts := wolfram.SimpleOptions{
		Layout:     wolfram.Layout(strings.ToLower(r.str("layout"))),
		Background: r.str("background"),
		Foreground: wolfram.Foreground(strings.ToLower(r.str("foreground"))),
		FontSize:   r.intValue("fontsize"),
		Width:      r.intValue("width"),
		Units:      r.units(),
		Timeout:    r.intValue("timeout"),
	}
	return opts, r.err
}

func parseAnswerOptions(c *gin.Context) (wolfram.AnswerOptions, error) {
	r := &queryReader{c: c}
	opts := wolfram.AnswerOptions{
		Units:   r.units(),
		Timeout: r.intValue("timeout"),
	}
	return opts, r.err
}

func parseFullOptions(c *gin.Context) (wolfram.FullOptions, error) {
	r := &queryReader{c: c}

	var formats []wolfram.Format
	for _, raw := range r.list("format") {
		parsed, err := wolfram.ParseFormats(raw)
		if err != nil {
			return wolfram.FullOptions{}, err
		}
		formats = append(formats, parsed...)
	}

	timeout := r.intValue("totaltimeout")
	if timeout == 0 {
		timeout = r.intValue("timeout")
	}

	opts := wolfram.FullOptions{
		Formats:       formats,
		IncludePodIDs: r.list("includepodid"),
		ExcludePodIDs: r.list("excludepodid"),
		PodTitles:     r.list("podtitle"),
		Location: wolfram.Location{
			IP:       r.str("ip"),
			LatLong:  r.str("latlong"),
			Location: r.str("location"),
		},
		Size: wolfram.Size{
			Width:     r.intValue("width"),
			MaxWidth:  r.intValue("maxwidth"),
			PlotWidth: r.intValue("plotwidth"),
			Mag:       r.floatValue("mag"),
		},
		Reinterpret: r.boolValue("reinterpret"),
		Translation: r.boolValue("translation"),
		IgnoreCase:  r.boolValue("ignorecase"),
		Units:       r.units(),
		Timeout:     timeout,
	}
	return opts, r.err
}
