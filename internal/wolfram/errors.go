package wolfram

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// ErrMissingAppID is returned by NewClient when no application id is given.
var ErrMissingAppID = errors.New("wolfram: appid must be a non-empty string")

const unknownErrorMessage = "Unknown error"

// ErrorBody is the uniform shape of a failed API response.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// APIError is returned when the API answers with a non-success status.
// Use errors.As to inspect it.
type APIError struct {
	Status  int
	Message string
}

// NewAPIError builds an APIError from a normalized error body.
func NewAPIError(body ErrorBody) *APIError {
	return &APIError{Status: body.Status, Message: body.Message}
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("wolfram api error %d", e.Status)
	}
	return fmt.Sprintf("wolfram api error %d: %s", e.Status, e.Message)
}

// Body returns the error as an ErrorBody.
func (e *APIError) Body() ErrorBody {
	return ErrorBody{Status: e.Status, Message: e.Message}
}

// OptionError reports an option value rejected before any request is sent.
type OptionError struct {
	Option string
	Value  any
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%v: %s", e.Option, e.Value, e.Reason)
}

// ReadErrorBody normalizes a failed response into an ErrorBody based on its
// content type. JSON bodies are trusted to already be {status, message};
// plain text becomes the message under the response's own status. Any other
// or missing content type yields a fixed 500 "Unknown error".
//
// The body is consumed; the caller still owns closing it.
func ReadErrorBody(resp *http.Response) (ErrorBody, error) {
	switch primaryContentType(resp.Header.Get("Content-Type")) {
	case "application/json":
		var body ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return ErrorBody{}, fmt.Errorf("decode error body: %w", err)
		}
		return body, nil
	case "text/plain":
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			return ErrorBody{}, fmt.Errorf("read error body: %w", err)
		}
		return ErrorBody{Status: resp.StatusCode, Message: string(text)}, nil
	default:
		return ErrorBody{Status: http.StatusInternalServerError, Message: unknownErrorMessage}, nil
	}
}

// primaryContentType returns the media type before any ";" parameter,
// lowercased. Unparseable headers fall back to a plain split so that
// "application/json;" still resolves.
func primaryContentType(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(header); err == nil {
		return mediaType
	}
	primary, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(primary))
}
