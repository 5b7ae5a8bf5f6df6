package ports

// Notifier surfaces transient, fire-and-forget user notifications
// (the toast collaborator). The core never observes a return value.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ConfirmFunc blocks for a yes/no confirmation of destructive intent.
// Views call it before delegating to the cancellation coordinator; the
// coordinator itself assumes intent is already confirmed.
type ConfirmFunc func(prompt string) bool
