// Package wolfram provides an HTTP client for the Wolfram|Alpha web APIs.
//
// # Overview
//
// One Client covers four endpoints:
//
//   - GET /v1/simple: the result rendered as a single image
//   - GET /v1/result: a short plain-text answer
//   - GET /v1/spoken: the answer phrased as a spoken sentence
//   - GET /v2/query: the full structured result as JSON (pods, subpods, tips)
//
// Every call issues exactly one request. There are no retries, no caching
// and no rate limiting; callers decide policy.
//
// # Client Usage
//
//	client, err := wolfram.NewClient(cfg.AppID)
//	if err != nil {
//		log.Fatalf("init client: %v", err)
//	}
//
//	answer, err := client.ShortAnswer(ctx, "distance to the moon", wolfram.AnswerOptions{
//		Units: wolfram.UnitsMetric,
//	})
//
// NewClient fails with ErrMissingAppID when the application id is empty,
// before any network activity.
//
// # Parameter Encoding
//
// Options are flattened into a Record (ordered key/value fields) and
// encoded by EncodeRecord into Params, an ordered list of query pairs:
//
//   - scalars produce one pair, formatted with strconv ("2", "true", "1.5")
//   - slices produce one pair per element under the same key, in order
//     (includepodid=a&includepodid=b)
//   - pairs keep insertion order, so encoded URLs are reproducible
//
// The encoder does no escaping of its own; Params.Encode applies
// url.QueryEscape when rendering the query string. The application id is
// always sent as "appid", followed by the input ("i" on the v1 endpoints,
// "input" on /v2/query) and then the options in declaration order. Zero
// option values are omitted.
//
// # Error Handling
//
//   - ErrMissingAppID: configuration error from NewClient
//   - *OptionError: an option value failed validation, nothing was sent
//   - *APIError: the API answered with a non-2xx status
//   - "execute request: ...": transport failure, wrapping the net/http error
//   - "decode response: ...": a success body could not be decoded
//
// Failed responses go through ReadErrorBody, which looks only at the
// primary content type:
//
//   - application/json: decoded as {"status", "message"}
//   - text/plain: the response status plus the body text
//   - anything else, or no header: status 500, "Unknown error"
//
// The fixed 500 fallback drops the real HTTP status. This mirrors how the
// API client has always behaved and is kept as is.
//
// # Thread Safety
//
// Client is immutable after NewClient returns and is safe for concurrent
// use.
package wolfram
