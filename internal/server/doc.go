// Package server wires configuration, the policy gate, the navigation
// manifest, and the HTTP/WebSocket surface into a runnable service.
package server
