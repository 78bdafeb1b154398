package wolfram

import (
	"encoding/json"
	"testing"
)

func TestFlexBool(t *testing.T) {
	cases := map[string]bool{
		`true`:                         true,
		`"true"`:                       true,
		`false`:                        false,
		`"false"`:                      false,
		`null`:                         false,
		`{"code":"1","msg":"Invalid"}`: true,
	}
	for in, want := range cases {
		var b FlexBool
		if err := json.Unmarshal([]byte(in), &b); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", in, err)
		}
		if bool(b) != want {
			t.Fatalf("FlexBool(%s) = %v, want %v", in, b, want)
		}
	}
}

func TestQueryResult_TipsAndErrorsDecodeTolerantly(t *testing.T) {
	var resp FullResponse
	raw := `{"queryresult":{"success":false,"error":{"code":"1","msg":"Invalid appid"},"tips":{"text":"Try spelling"},"didyoumeans":null}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	qr := resp.QueryResult
	if qr.Success || !bool(qr.Error) {
		t.Fatalf("QueryResult = %#v, want failed with error", qr)
	}
	if len(qr.Tips) != 1 || qr.Tips[0].Text != "Try spelling" {
		t.Fatalf("Tips = %#v", qr.Tips)
	}
	if qr.DidYouMeans != nil {
		t.Fatalf("DidYouMeans = %#v, want nil", qr.DidYouMeans)
	}
	if qr.PrimaryText() != "" {
		t.Fatalf("PrimaryText = %q, want empty", qr.PrimaryText())
	}
}

func TestPrimaryText_PrefersResultPod(t *testing.T) {
	qr := QueryResult{Pods: []Pod{
		{ID: "Input", SubPods: []SubPod{{PlainText: "2+2"}}},
		{ID: "Other", SubPods: []SubPod{{PlainText: "four"}}},
		{ID: "Result", SubPods: []SubPod{{PlainText: " 4 "}, {PlainText: ""}}},
	}}
	if got := qr.PrimaryText(); got != "4" {
		t.Fatalf("PrimaryText = %q, want 4", got)
	}
	qr.Pods = qr.Pods[:2]
	if got := qr.PrimaryText(); got != "four" {
		t.Fatalf("PrimaryText fallback = %q, want four", got)
	}
	if qr.PodByID("missing") != nil {
		t.Fatalf("PodByID(missing) returned a pod")
	}
}

func TestOptionParsers(t *testing.T) {
	u, err := ParseUnits(" Metric ")
	if err != nil || u != UnitsMetric {
		t.Fatalf("ParseUnits = %q, %v", u, err)
	}
	if _, err := ParseUnits("kelvin"); err == nil {
		t.Fatalf("ParseUnits(kelvin) returned nil error")
	}
	formats, err := ParseFormats("plaintext, image,,")
	if err != nil || len(formats) != 2 || formats[0] != FormatPlainText || formats[1] != FormatImage {
		t.Fatalf("ParseFormats = %#v, %v", formats, err)
	}
	if _, err := ParseFormats("pdf"); err == nil {
		t.Fatalf("ParseFormats(pdf) returned nil error")
	}
}

func TestOptionsValidate(t *testing.T) {
	valid := []interface{ Validate() error }{
		SimpleOptions{},
		SimpleOptions{Layout: LayoutDivider, Background: "white", Foreground: ForegroundWhite, FontSize: 12, Width: 300},
		SimpleOptions{Background: "abc"},
		AnswerOptions{Units: UnitsImperial, Timeout: 3},
		FullOptions{Location: Location{LatLong: "40.11, -88.24"}, Size: Size{Mag: 2}},
	}
	for _, opts := range valid {
		if err := opts.Validate(); err != nil {
			t.Fatalf("%#v.Validate() = %v, want nil", opts, err)
		}
	}
	invalid := []interface{ Validate() error }{
		SimpleOptions{Background: "#zz"},
		SimpleOptions{Foreground: "red"},
		SimpleOptions{FontSize: -1},
		SimpleOptions{Width: -1},
		SimpleOptions{Timeout: -1},
		AnswerOptions{Timeout: -5},
		FullOptions{Location: Location{LatLong: "north"}},
		FullOptions{Size: Size{MaxWidth: -1}},
		FullOptions{Size: Size{Mag: -1}},
		FullOptions{Units: "si"},
	}
	for _, opts := range invalid {
		if err := opts.Validate(); err == nil {
			t.Fatalf("%#v.Validate() = nil, want error", opts)
		}
	}
}
