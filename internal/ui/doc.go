// Package ui provides the interactive query console for wolfy.
//
// # Architecture Overview
//
// The console is a single Bubble Tea model. A text input at the top takes the
// question, a row of endpoint chips shows which API the next query goes to,
// and a scrollable viewport lists every answer received in this session,
// newest first.
//
// # Package Structure
//
//   - app.go: Model, Options, key handling and the Run entry point
//   - query.go: tea.Cmd that calls the wolfram.Querier and builds a history.Entry
//   - view.go: rendering of the header, input, history viewport and footer
//   - endpoint.go: the endpoint cycle (short, spoken, full, simple)
//   - theme.go: color themes and Lipgloss styles
//   - keys.go: key bindings and help text
//
// # Queries
//
// Only one query is in flight at a time. While it runs the header shows a
// spinner; the result arrives as a queryResultMsg and is appended to the
// history.Store. Full query results are rendered as pod titles followed by
// their plaintext. Images from the simple endpoint are written to a file in
// the OS temp directory (or Options.ImageDir) and the entry shows the path.
//
// # Keyboard Navigation
//
//   - enter: send the query to the selected endpoint
//   - tab / shift+tab: cycle endpoints
//   - pgup / pgdown: scroll history
//   - ctrl+l: clear history
//   - ctrl+u: clear the input line
//   - ctrl+t: cycle theme
//   - f1: toggle help
//   - esc / ctrl+c: quit
//
// The selected theme and endpoint are written to prefs.toml whenever they
// change and restored on the next start.
package ui
