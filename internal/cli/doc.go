// Package cli implements the wolfy command line.
//
// The root command loads config.toml, applies the persistent flag overrides
// (--units, --timeout, --log-level, --log-format, --debug) and builds the
// logger before any subcommand runs. Subcommands:
//
//	short <query>     /v1/result, prints the one-line answer
//	spoken <query>    /v1/spoken, prints the spoken sentence
//	simple <query>    /v1/simple, saves the image or prints a data URL
//	full <query>      /v2/query, prints pods as text, json or yaml
//	console           interactive query console
//	serve             HTTP gateway
//	version           build version
//
// Query arguments are joined with single spaces. Option errors are reported
// before any request is sent. With --debug every request is traced to stderr
// with the appid redacted.
package cli
