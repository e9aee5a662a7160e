package domain

// Inbound request types delivered by the voice platform.
const (
	RequestLaunch           = "LaunchRequest"
	RequestIntent           = "IntentRequest"
	RequestSessionEnded     = "SessionEndedRequest"
	RequestPurchaseCallback = "Connections.Response"
	RequestUserEvent        = "Alexa.Presentation.APL.UserEvent"
)

// Intent names from the interaction model.
const (
	IntentStop   = "AMAZON.StopIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentHelp   = "AMAZON.HelpIntent"
	IntentYes    = "AMAZON.YesIntent"
	IntentNo     = "AMAZON.NoIntent"
	IntentBuy    = "BuyIntent"
	IntentCanBuy = "CanBuyIntent"
	IntentRefund = "RefundIntent"
)

// Event is an inbound request envelope from the voice platform.
type Event struct {
	Version string        `json:"version"`
	Session *Session      `json:"session,omitempty"`
	Context *EventContext `json:"context,omitempty"`
	Request Request       `json:"request"`
}

// Session is the live session block. Attributes, when present, are
// authoritative over the persisted record for this session.
type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// EventContext carries the platform system block.
type EventContext struct {
	System System `json:"System"`
}

// System identifies the user and the platform API for this request.
type System struct {
	User           PlatformUser `json:"user"`
	APIEndpoint    string       `json:"apiEndpoint"`
	APIAccessToken string       `json:"apiAccessToken"`
}

// PlatformUser holds the opaque stable user identifier.
type PlatformUser struct {
	UserID string `json:"userId"`
}

// Request is the typed portion of the inbound event.
type Request struct {
	Type      string           `json:"type"`
	RequestID string           `json:"requestId,omitempty"`
	Locale    string           `json:"locale,omitempty"`
	Intent    *Intent          `json:"intent,omitempty"`
	Name      string           `json:"name,omitempty"`
	Payload   *CallbackPayload `json:"payload,omitempty"`
	Arguments []any            `json:"arguments,omitempty"`
}

// Intent is a resolved intent from an IntentRequest.
type Intent struct {
	Name string `json:"name"`
}

// CallbackPayload is the purchase-callback payload. PurchaseResult is
// empty when the platform omitted the field.
type CallbackPayload struct {
	PurchaseResult string `json:"purchaseResult"`
}

// UserID returns the platform user identifier, empty if absent.
func (e *Event) UserID() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.System.User.UserID
}

// APIEndpoint returns the platform API base URL for this request.
func (e *Event) APIEndpoint() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.System.APIEndpoint
}

// AccessToken returns the bearer token for platform API calls.
func (e *Event) AccessToken() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.System.APIAccessToken
}

// Locale returns the request locale, defaulting to en-US.
func (e *Event) Locale() string {
	if e.Request.Locale == "" {
		return "en-US"
	}
	return e.Request.Locale
}

// IntentName returns the intent name of an IntentRequest, empty
// otherwise.
func (e *Event) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// PurchaseResult returns the callback outcome, empty when the payload
// or the field is missing.
func (e *Event) PurchaseResult() string {
	if e.Request.Payload == nil {
		return ""
	}
	return e.Request.Payload.PurchaseResult
}

// SessionAttributes returns the live session attribute map, nil when
// the platform supplied none.
func (e *Event) SessionAttributes() map[string]any {
	if e.Session == nil {
		return nil
	}
	return e.Session.Attributes
}
