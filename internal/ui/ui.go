// Package ui declares the presentation capabilities the core consumes:
// transient notifications and modal yes/no confirmation. Implementations
// live with whatever surface renders the console.
package ui

import "context"

// Notifier presents transient titled messages to the operator.
// Calls are fire-and-forget; no outcome is consumed.
type Notifier interface {
	Success(title, text string)
	Warn(title, text string)
	Error(title, text string)
}

// Confirmer presents a modal prompt with a destructive-confirm choice and
// resolves to whether the operator confirmed. A false result with nil error
// means the operator declined or dismissed the prompt.
type Confirmer interface {
	Confirm(ctx context.Context, title, text string) (bool, error)
}
