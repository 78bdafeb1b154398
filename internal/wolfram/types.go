package wolfram

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// SimpleResult is the outcome of a /v1/simple call. Exactly one of Image or
// NoResult is set.
type SimpleResult struct {
	Image       []byte
	ContentType string
	Ext         string
	NoResult    string
}

// HasImage reports whether the API returned an image.
func (r *SimpleResult) HasImage() bool {
	return r != nil && len(r.Image) > 0
}

// DataURL renders the image as a base64 data URL.
func (r *SimpleResult) DataURL() string {
	if !r.HasImage() {
		return ""
	}
	return "data:" + r.ContentType + ";base64," + base64.StdEncoding.EncodeToString(r.Image)
}

// FullResponse mirrors the /v2/query JSON envelope.
type FullResponse struct {
	QueryResult QueryResult `json:"queryresult"`
}

// QueryResult is the body of a full query response.
type QueryResult struct {
	Success       bool        `json:"success"`
	Error         FlexBool    `json:"error"`
	NumPods       int         `json:"numpods"`
	DataTypes     string      `json:"datatypes"`
	TimedOut      string      `json:"timedout"`
	TimedOutPods  string      `json:"timedoutpods"`
	Timing        float64     `json:"timing"`
	ParseTiming   float64     `json:"parsetiming"`
	ParseTimedOut bool        `json:"parsetimedout"`
	Recalculate   string      `json:"recalculate"`
	ID            string      `json:"id"`
	Host          string      `json:"host"`
	Server        string      `json:"server"`
	Related       string      `json:"related"`
	Version       string      `json:"version"`
	InputString   string      `json:"inputstring"`
	Pods          []Pod       `json:"pods,omitempty"`
	DidYouMeans   DidYouMeans `json:"didyoumeans,omitempty"`
	Tips          Tips        `json:"tips,omitempty"`
}

// Pod is one titled block of a full query result.
type Pod struct {
	Title           string          `json:"title"`
	Scanner         string          `json:"scanner"`
	ID              string          `json:"id"`
	Position        int             `json:"position"`
	Error           FlexBool        `json:"error"`
	NumSubPods      int             `json:"numsubpods"`
	SubPods         []SubPod        `json:"subpods"`
	ExpressionTypes ExpressionTypes `json:"expressiontypes,omitempty"`
}

// SubPod holds one rendering of a pod's content.
type SubPod struct {
	Title     string `json:"title"`
	Img       *Image `json:"img,omitempty"`
	PlainText string `json:"plaintext"`
}

// Image describes a pod image hosted by the API.
type Image struct {
	Src             string `json:"src"`
	Alt             string `json:"alt"`
	Title           string `json:"title"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Type            string `json:"type"`
	Themes          string `json:"themes"`
	ColorInvertable bool   `json:"colorinvertable"`
	ContentType     string `json:"contenttype"`
}

// DidYouMean is a suggested alternative interpretation.
type DidYouMean struct {
	Score string `json:"score"`
	Level string `json:"level"`
	Val   string `json:"val"`
}

// Tip is a hint about how to rephrase the input.
type Tip struct {
	Text string `json:"text"`
}

// ExpressionType names the type of a pod expression.
type ExpressionType struct {
	Name string `json:"name"`
}

// DidYouMeans decodes either a single object or an array.
type DidYouMeans []DidYouMean

func (d *DidYouMeans) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]DidYouMean)(d))
}

// Tips decodes either a single object or an array.
type Tips []Tip

func (t *Tips) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]Tip)(t))
}

// ExpressionTypes decodes either a single object or an array.
type ExpressionTypes []ExpressionType

func (e *ExpressionTypes) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]ExpressionType)(e))
}

func unmarshalOneOrMany[T any](data []byte, dest *[]T) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*dest = nil
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, dest)
	}
	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*dest = []T{one}
	return nil
}

// FlexBool accepts true/false as JSON booleans or strings. The API reports
// errors as an object on failure, which also decodes as true.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte(`"true"`)):
		*b = true
	case bytes.Equal(trimmed, []byte("false")), bytes.Equal(trimmed, []byte(`"false"`)),
		bytes.Equal(trimmed, []byte("null")), len(trimmed) == 0:
		*b = false
	default:
		*b = trimmed[0] == '{'
	}
	return nil
}

// PodByID returns the pod with the given id, or nil.
func (q QueryResult) PodByID(id string) *Pod {
	for i := range q.Pods {
		if q.Pods[i].ID == id {
			return &q.Pods[i]
		}
	}
	return nil
}

// PrimaryText returns the plaintext of the primary result pod, falling back
// to the first non-input pod with text.
func (q QueryResult) PrimaryText() string {
	if pod := q.PodByID("Result"); pod != nil {
		if text := pod.Text(); text != "" {
			return text
		}
	}
	for _, pod := range q.Pods {
		if pod.ID == "Input" {
			continue
		}
		if text := pod.Text(); text != "" {
			return text
		}
	}
	return ""
}

// Text joins the plaintext of every subpod.
func (p Pod) Text() string {
	var parts []string
	for _, sub := range p.SubPods {
		if text := strings.TrimSpace(sub.PlainText); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
