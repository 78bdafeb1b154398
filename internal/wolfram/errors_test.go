package wolfram

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func fakeResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestReadErrorBody(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        ErrorBody
	}{
		{
			name:        "json body returned as is",
			status:      501,
			contentType: "application/json;",
			body:        `{"status":501,"message":"message"}`,
			want:        ErrorBody{Status: 501, Message: "message"},
		},
		{
			name:        "json status comes from body",
			status:      400,
			contentType: "application/json; charset=utf-8",
			body:        `{"status":403,"message":"Invalid appid"}`,
			want:        ErrorBody{Status: 403, Message: "Invalid appid"},
		},
		{
			name:        "plain text uses response status",
			status:      400,
			contentType: "text/plain; format",
			body:        "message",
			want:        ErrorBody{Status: 400, Message: "message"},
		},
		{
			name:        "plain text with charset",
			status:      501,
			contentType: "text/plain;charset=utf-8",
			body:        "Wolfram|Alpha did not understand your input",
			want:        ErrorBody{Status: 501, Message: "Wolfram|Alpha did not understand your input"},
		},
		{
			name:        "content type is case insensitive",
			status:      404,
			contentType: "Text/Plain",
			body:        "gone",
			want:        ErrorBody{Status: 404, Message: "gone"},
		},
		{
			name:        "unknown content type falls back",
			status:      418,
			contentType: "some/invalid; format",
			body:        "ignored",
			want:        ErrorBody{Status: 500, Message: "Unknown error"},
		},
		{
			name:   "missing content type falls back",
			status: 403,
			body:   "ignored",
			want:   ErrorBody{Status: 500, Message: "Unknown error"},
		},
		{
			name:        "html falls back",
			status:      502,
			contentType: "text/html",
			body:        "<html></html>",
			want:        ErrorBody{Status: 500, Message: "Unknown error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadErrorBody(fakeResponse(tt.status, tt.contentType, tt.body))
			if err != nil {
				t.Fatalf("ReadErrorBody returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ReadErrorBody = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReadErrorBody_MalformedJSONPropagates(t *testing.T) {
	_, err := ReadErrorBody(fakeResponse(500, "application/json", "{not-json"))
	if err == nil || !strings.Contains(err.Error(), "decode error body") {
		t.Fatalf("ReadErrorBody error = %v, want decode error body", err)
	}
}

func TestAPIError(t *testing.T) {
	err := error(NewAPIError(ErrorBody{Status: 501, Message: "no result"}))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("errors.As failed for %T", err)
	}
	if apiErr.Status != 501 || apiErr.Message != "no result" {
		t.Fatalf("APIError = %#v", apiErr)
	}
	if got := apiErr.Body(); got != (ErrorBody{Status: 501, Message: "no result"}) {
		t.Fatalf("Body = %#v", got)
	}
	if !strings.Contains(err.Error(), "501") || !strings.Contains(err.Error(), "no result") {
		t.Fatalf("Error() = %q", err.Error())
	}
	if got := NewAPIError(ErrorBody{Status: 500}).Error(); got != "wolfram api error 500" {
		t.Fatalf("Error() without message = %q", got)
	}
	var nilErr *APIError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil receiver Error() = %q", nilErr.Error())
	}
}

func TestPrimaryContentType(t *testing.T) {
	cases := map[string]string{
		"":                                "",
		"application/json;":               "application/json",
		"text/plain; format":              "text/plain",
		" image/png ":                     "image/png",
		"APPLICATION/JSON; charset=utf-8": "application/json",
	}
	for in, want := range cases {
		if got := primaryContentType(in); got != want {
			t.Fatalf("primaryContentType(%q) = %q, want %q", in, got, want)
		}
	}
}
