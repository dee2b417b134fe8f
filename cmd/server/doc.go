// Package main is the entry point for the OmniCalc navigation service.
//
// The server owns the view-mode category manifest and exposes it to the
// UI shell:
//   - REST API for the navigation menu, mode lookups, and accelerator
//     dispatch
//   - Persisted selection storage keyed by stable serialization ids
//   - WebSocket streaming of selection changes
//   - Policy-gated availability of the graphing calculator mode
//
// Configuration comes from environment variables (12-factor) with CLI
// flag overrides; see the config package for the full list.
//
// Usage:
//
//	./server -port 8000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
