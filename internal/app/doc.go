// Package app provides the orchestration layer for wolfy.
//
// # Overview
//
// This package wires together configuration, the Wolfram|Alpha client, query
// history and the front ends. It serves as the composition root where all
// dependencies are initialized and connected; the cli package only parses
// flags and hands a loaded config.Config over.
//
// # Entry Points
//
//   - NewClient: builds a wolfram.Client from config (appid, base URL, user agent)
//   - Run: starts the interactive console and blocks until the user quits
//   - Serve: starts the HTTP gateway and blocks until the context is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> wolfram.ParseUnits()  Validate configured units
//	       ├─────> NewClient()           Create HTTP client
//	       ├─────> prefs.Load()          Restore theme and endpoint
//	       ├─────> history.NewStore()    Session history
//	       └─────> ui.Run()              Start TUI (blocks)
//
//	┌──────────────┐
//	│   Serve()    │
//	└──────┬───────┘
//	       │
//	       ├─────> NewClient()           Create HTTP client
//	       └─────> gateway.New()         Router + ListenAndServe (blocks)
//
// # Error Handling
//
// A missing appid is reported before any UI or listener starts, with a hint
// naming the config file and the WOLFY_APPID variable. Query failures inside
// the console are shown in its history and never end the program.
package app
