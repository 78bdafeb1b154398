package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "json", &buf)
	logger.Debug("hidden")
	logger.Info("query", "endpoint", "short")

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug record written at info level: %q", line)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("output is not JSON: %q", line)
	}
	if record["msg"] != "query" || record["endpoint"] != "short" {
		t.Fatalf("record = %#v", record)
	}
}

func TestNewLoggerWithWriter_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerWithWriter(slog.LevelDebug, "pretty", &buf).Debug("hello", "k", "v")
	if out := buf.String(); !strings.Contains(out, "msg=hello") || !strings.Contains(out, "k=v") {
		t.Fatalf("text output = %q", out)
	}
}

func TestRedactAppID(t *testing.T) {
	cases := map[string]string{
		"https://api.wolframalpha.com/v1/result?appid=SECRET&i=pi": "https://api.wolframalpha.com/v1/result?appid=REDACTED&i=pi",
		"https://x/y?i=pi&appid=SECRET":                            "https://x/y?i=pi&appid=REDACTED",
		"https://x/y?i=pi":                                         "https://x/y?i=pi",
	}
	for in, want := range cases {
		if got := RedactAppID(in); got != want {
			t.Fatalf("RedactAppID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransport_LogsRedactedURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("4"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelDebug, "text", &buf)
	client := &http.Client{Transport: Transport(nil, logger)}

	resp, err := client.Get(ts.URL + "/v1/result?appid=SECRET&i=2%2B2")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body.Close()

	out := buf.String()
	if strings.Contains(out, "SECRET") {
		t.Fatalf("appid leaked into log: %q", out)
	}
	if !strings.Contains(out, "appid=REDACTED") || !strings.Contains(out, "status=200") {
		t.Fatalf("log output = %q", out)
	}
}
