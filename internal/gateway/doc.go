// Package gateway serves a local HTTP relay in front of the Wolfram|Alpha
// APIs so that tools without an appid can query them.
//
// Routes mirror the upstream paths:
//
//	GET /v1/simple   image answer (or plain text when there is no result)
//	GET /v1/result   short plain-text answer
//	GET /v1/spoken   spoken-form sentence
//	GET /v2/query    full JSON result
//	GET /healthz     liveness probe
//
// Query parameters are parsed into the typed wolfram option structs and
// validated before anything is sent upstream; unknown parameters are ignored.
// An appid supplied by the caller is never forwarded, the server's own id is
// used instead.
//
// Errors are answered with the {status, message} JSON body the API itself
// uses. Invalid options map to 400, normalized upstream errors keep their
// status, and transport failures become 502. Every response carries an
// X-Request-ID header that also appears in the request log.
package gateway
