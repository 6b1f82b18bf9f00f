// Package errs defines the error types returned to API clients.
//
// Every handler error ends up as an HTTPError so clients always receive
// the same JSON shape: a status, a machine-readable code, a message, and
// for validation failures a map from field name to messages.
package errs
