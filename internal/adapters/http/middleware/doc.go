// Package middleware provides the inbound request pipeline for the item
// tracker API. The server installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Session
//
// RequireSession is mounted on the admin routes only.
package middleware
