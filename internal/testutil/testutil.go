package testutil

import (
	"go.uber.org/zap"

	"toneskill/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewLaunchEvent builds a LaunchRequest event for a user
func NewLaunchEvent(userID string) *domain.Event {
	return &domain.Event{
		Version: "1.0",
		Session: &domain.Session{New: true},
		Context: &domain.EventContext{
			System: domain.System{
				User:           domain.PlatformUser{UserID: userID},
				APIEndpoint:    "https://api.example.com",
				APIAccessToken: "test-token",
			},
		},
		Request: domain.Request{Type: domain.RequestLaunch, Locale: "en-US"},
	}
}

// NewIntentEvent builds an IntentRequest event carrying live session
// attributes
func NewIntentEvent(userID, intent string, attributes map[string]any) *domain.Event {
	return &domain.Event{
		Version: "1.0",
		Session: &domain.Session{Attributes: attributes},
		Context: &domain.EventContext{
			System: domain.System{User: domain.PlatformUser{UserID: userID}},
		},
		Request: domain.Request{
			Type:   domain.RequestIntent,
			Locale: "en-US",
			Intent: &domain.Intent{Name: intent},
		},
	}
}

// NewCallbackEvent builds a purchase-callback event
func NewCallbackEvent(userID, name, outcome string, attributes map[string]any) *domain.Event {
	ev := &domain.Event{
		Version: "1.0",
		Session: &domain.Session{Attributes: attributes},
		Context: &domain.EventContext{
			System: domain.System{User: domain.PlatformUser{UserID: userID}},
		},
		Request: domain.Request{
			Type:   domain.RequestPurchaseCallback,
			Locale: "en-US",
			Name:   name,
		},
	}
	if outcome != "" {
		ev.Request.Payload = &domain.CallbackPayload{PurchaseResult: outcome}
	}
	return ev
}
