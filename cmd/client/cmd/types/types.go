// Package types holds the context keys shared by the command packages.
package types

type contextKey string

// ClientAppKey carries the initialized *client.App through cobra contexts.
const ClientAppKey contextKey = "clientApp"
