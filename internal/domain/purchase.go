package domain

// PurchaseIntent names an asynchronous purchase-flow request. The
// same value comes back as the callback's request name.
type PurchaseIntent string

const (
	PurchaseBuy    PurchaseIntent = "Buy"
	PurchaseCancel PurchaseIntent = "Cancel"
	PurchaseUpsell PurchaseIntent = "Upsell"
)

// Purchase callback outcomes reported by the entitlement service.
const (
	OutcomeAccepted         = "ACCEPTED"
	OutcomeDeclined         = "DECLINED"
	OutcomeAlreadyPurchased = "ALREADY_PURCHASED"
	OutcomeError            = "ERROR"
)

// PurchaseToken is the fixed correlation token on outgoing purchase
// directives. There is no per-request nonce; overlapping purchase
// flows for one user are not disambiguated.
const PurchaseToken = "subscriptionToken"
