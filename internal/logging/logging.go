// Package logging builds the slog loggers used by the CLI and gateway.
package logging

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// NewLogger creates a configured slog.Logger writing to stderr, keeping
// stdout free for answers and image data.
//
// format: "text" (human-readable) or "json" (structured)
func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to the given writer.
func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RedactAppID hides the appid query value in a request URL so it can be
// logged.
func RedactAppID(rawURL string) string {
	start := strings.Index(rawURL, "appid=")
	if start < 0 {
		return rawURL
	}
	start += len("appid=")
	end := strings.IndexByte(rawURL[start:], '&')
	if end < 0 {
		return rawURL[:start] + "REDACTED"
	}
	return rawURL[:start] + "REDACTED" + rawURL[start+end:]
}

// Transport wraps base so every outbound request is logged at DEBUG with
// the appid redacted. A nil base uses http.DefaultTransport.
func Transport(base http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{base: base, logger: logger}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactAppID(req.URL.String())
	t.logger.Debug("HTTP request", "method", req.Method, "url", target)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Debug("HTTP request failed", "url", target, "error", err, "duration", time.Since(start).String())
		return nil, err
	}
	t.logger.Debug("HTTP response",
		"status", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"),
		"duration", time.Since(start).String(),
	)
	return resp, nil
}
