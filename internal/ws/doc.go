// Package ws pushes selection-change notifications to WebSocket
// subscribers, so open UI surfaces can follow the active view mode
// without polling.
package ws
