// Package config loads wolfy's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wolfy/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. WOLFY_APPID, when set, replaces app_id in every case
//
// # TOML Format
//
//	app_id = "XXXXXX-XXXXXXXXXX"
//	base_url = "https://api.wolframalpha.com"
//	units = "metric"
//	timeout = 10
//	listen = "127.0.0.1:7488"
//	log_level = "info"
//	log_format = "text"
//
// Every field is optional. app_id has no default; commands that talk to
// the API fail early when it is missing. timeout is forwarded to the API as
// a query parameter and never drives a local timer.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and negative timeouts. A missing file is
// not an error.
package config
