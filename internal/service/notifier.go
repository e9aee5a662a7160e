package service

// Notifier delivers best-effort operator alerts out of band. An
// implementation must never block a user response on delivery.
type Notifier interface {
	Alert(text string)
}

// NopNotifier discards alerts.
type NopNotifier struct{}

// Alert implements Notifier.
func (NopNotifier) Alert(string) {}
