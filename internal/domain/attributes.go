package domain

// State represents where the conversation is between turns
type State string

const (
	StateStart        State = "START"
	StateToneFollowup State = "TONE_FOLLOWUP"
)

// Attribute keys as stored in the user record. Renaming one orphans
// the values already persisted under the old name.
const (
	keyVisitCount      = "visitCount"
	keyFreeCount       = "freeCount"
	keySubscriberCount = "subscriberCount"
	keyIsSubscriber    = "isSubscriber"
	keyProductID       = "productId"
	keyState           = "state"
)

// Attributes is the per-user conversation record carried between
// invocations, either in the live session or in the attribute store.
type Attributes struct {
	VisitCount      int
	FreeCount       int
	SubscriberCount int
	IsSubscriber    bool
	ProductID       string
	State           State

	// Extra carries fields this version doesn't know about so a
	// write never drops them.
	Extra map[string]any
}

// FirstContact reports whether the user has never completed a launch.
func (a *Attributes) FirstContact() bool {
	return a.VisitCount == 0
}

// FromMap builds Attributes from a raw attribute map. Numbers may
// arrive as float64 (JSON session attributes) or int (restored store
// values); both are accepted. An empty map yields a first-contact
// record in StateStart.
func FromMap(data map[string]any) Attributes {
	a := Attributes{State: StateStart}
	for k, v := range data {
		switch k {
		case keyVisitCount:
			a.VisitCount = intValue(v)
		case keyFreeCount:
			a.FreeCount = intValue(v)
		case keySubscriberCount:
			a.SubscriberCount = intValue(v)
		case keyIsSubscriber:
			a.IsSubscriber, _ = v.(bool)
		case keyProductID:
			a.ProductID, _ = v.(string)
		case keyState:
			if s, ok := v.(string); ok && s != "" {
				a.State = State(s)
			}
		default:
			if a.Extra == nil {
				a.Extra = make(map[string]any)
			}
			a.Extra[k] = v
		}
	}
	return a
}

// ToMap renders the record as an attribute map for the session
// envelope and the store.
func (a *Attributes) ToMap() map[string]any {
	data := make(map[string]any, len(a.Extra)+6)
	for k, v := range a.Extra {
		data[k] = v
	}
	data[keyVisitCount] = a.VisitCount
	data[keyFreeCount] = a.FreeCount
	data[keySubscriberCount] = a.SubscriberCount
	data[keyIsSubscriber] = a.IsSubscriber
	data[keyProductID] = a.ProductID
	data[keyState] = string(a.State)
	return data
}

func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
