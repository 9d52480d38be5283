package notify

import "log/slog"

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notifier is the fire-and-forget user notification sink. Delivery is
// best effort; callers never depend on it succeeding.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// LogNotifier is the fallback sink when no richer surface is wired; it
// reports through the structured log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(title, description string, severity Severity) {
	if severity == SeverityDestructive {
		slog.Warn("notification", "title", title, "description", description)
		return
	}
	slog.Info("notification", "title", title, "description", description)
}
