// Package policy gates the graphing calculator mode on platform
// capability and a remote policy decision, cached for the process
// lifetime.
package policy
