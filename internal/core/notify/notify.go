// Package notify defines the notification types shown as toasts in the TUI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event. Notifications are
// transient; there is no durable history.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// New creates a notification stamped with the current time.
func New(level Level, message string) Notification {
	return Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
