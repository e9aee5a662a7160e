package handler

import "toneskill/internal/domain"

// Kind classifies an inbound event into exactly one handler path.
type Kind int

const (
	KindUnknown Kind = iota
	KindPurchaseCallback
	KindLaunch
	KindIntent
	KindSessionEnded
	KindUserEvent
)

// Classify is a pure function of the event's type and session fields.
// Purchase callbacks win over everything else; a new session is a
// launch even when the request type says otherwise (retried launches
// arrive that way).
func Classify(ev *domain.Event) Kind {
	switch {
	case ev.Request.Type == domain.RequestPurchaseCallback:
		return KindPurchaseCallback
	case (ev.Session != nil && ev.Session.New) || ev.Request.Type == domain.RequestLaunch:
		return KindLaunch
	case ev.Request.Type == domain.RequestIntent:
		return KindIntent
	case ev.Request.Type == domain.RequestSessionEnded:
		return KindSessionEnded
	case ev.Request.Type == domain.RequestUserEvent:
		return KindUserEvent
	}
	return KindUnknown
}
