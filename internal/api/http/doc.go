// Package http exposes the navigation registry to the UI shell: the
// assembled menu, per-mode lookups, accelerator dispatch, and the
// persisted mode selection.
package http
