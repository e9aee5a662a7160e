package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toneskill/internal/domain"
	"toneskill/internal/testutil"
	"toneskill/internal/vocab"
)

func TestPurchaseService_Directive(t *testing.T) {
	svc := NewPurchaseService(&testutil.MockNotifier{}, testutil.NewTestLogger())

	d := svc.Directive(domain.PurchaseBuy, "prod-1", "")

	assert.Equal(t, "Connections.SendRequest", d.Type)
	assert.Equal(t, "Buy", d.Name)
	assert.Equal(t, domain.PurchaseToken, d.Token)
	assert.Equal(t, "prod-1", d.Payload.InSkillProduct.ProductID)
	assert.Empty(t, d.Payload.UpsellMessage)
}

func TestPurchaseService_Directive_Upsell(t *testing.T) {
	svc := NewPurchaseService(&testutil.MockNotifier{}, testutil.NewTestLogger())

	d := svc.Directive(domain.PurchaseUpsell, "prod-1", "Want to learn more? ")

	assert.Equal(t, "Upsell", d.Name)
	assert.Equal(t, "Want to learn more? ", d.Payload.UpsellMessage)
}

func TestPurchaseService_ApplyCallback(t *testing.T) {
	msgs := vocab.Messages("en-US")

	tests := []struct {
		name             string
		callback         string
		outcome          string
		subscriberBefore bool
		subscriberAfter  bool
		expectOK         bool
		expectSpeech     string
		expectAlerts     int
	}{
		{
			name:            "buy accepted",
			callback:        "Buy",
			outcome:         domain.OutcomeAccepted,
			subscriberAfter: true,
			expectOK:        true,
			expectSpeech:    vocab.ShortPause,
		},
		{
			name:             "buy declined",
			callback:         "Buy",
			outcome:          domain.OutcomeDeclined,
			subscriberBefore: false,
			subscriberAfter:  false,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:            "buy already purchased while not subscriber",
			callback:        "Buy",
			outcome:         domain.OutcomeAlreadyPurchased,
			subscriberAfter: true,
			expectOK:        true,
			expectSpeech:    msgs.AlreadySubscribed,
			expectAlerts:    1,
		},
		{
			name:             "buy already purchased while subscriber",
			callback:         "Buy",
			outcome:          domain.OutcomeAlreadyPurchased,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     msgs.AlreadySubscribed,
		},
		{
			name:             "buy error leaves entitlement unchanged",
			callback:         "Buy",
			outcome:          domain.OutcomeError,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     msgs.NoPurchase + vocab.ShortPause,
		},
		{
			name:         "buy illegal outcome falls through",
			callback:     "Buy",
			outcome:      "EXPLODED",
			expectOK:     false,
			expectSpeech: "",
		},
		{
			name:             "cancel accepted",
			callback:         "Cancel",
			outcome:          domain.OutcomeAccepted,
			subscriberBefore: true,
			subscriberAfter:  false,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:             "cancel declined leaves entitlement unchanged",
			callback:         "Cancel",
			outcome:          domain.OutcomeDeclined,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:             "cancel already purchased is log-only",
			callback:         "Cancel",
			outcome:          domain.OutcomeAlreadyPurchased,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:             "cancel error",
			callback:         "Cancel",
			outcome:          domain.OutcomeError,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     msgs.NoPurchase + vocab.ShortPause,
		},
		{
			name:             "upsell outcomes are informational",
			callback:         "Upsell",
			outcome:          domain.OutcomeAccepted,
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:         "upsell error",
			callback:     "Upsell",
			outcome:      domain.OutcomeError,
			expectOK:     true,
			expectSpeech: msgs.NoPurchase + vocab.ShortPause,
		},
		{
			name:             "missing outcome is a silent no-op",
			callback:         "Buy",
			outcome:          "",
			subscriberBefore: true,
			subscriberAfter:  true,
			expectOK:         true,
			expectSpeech:     vocab.ShortPause,
		},
		{
			name:         "unknown callback name falls through",
			callback:     "Gift",
			outcome:      domain.OutcomeAccepted,
			expectOK:     false,
			expectSpeech: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &testutil.MockNotifier{}
			svc := NewPurchaseService(notifier, testutil.NewTestLogger())
			attrs := domain.Attributes{IsSubscriber: tt.subscriberBefore, ProductID: "prod-1"}

			speech, ok := svc.ApplyCallback(tt.callback, tt.outcome, &attrs, msgs)

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expectSpeech, speech)
			assert.Equal(t, tt.subscriberAfter, attrs.IsSubscriber)
			assert.Len(t, notifier.Alerts, tt.expectAlerts)
		})
	}
}

// Replaying an accepted buy callback must not have a second side
// effect beyond the flag already being set.
func TestPurchaseService_ApplyCallback_Idempotent(t *testing.T) {
	svc := NewPurchaseService(&testutil.MockNotifier{}, testutil.NewTestLogger())
	msgs := vocab.Messages("en-US")
	attrs := domain.Attributes{ProductID: "prod-1"}

	_, ok := svc.ApplyCallback("Buy", domain.OutcomeAccepted, &attrs, msgs)
	assert.True(t, ok)
	assert.True(t, attrs.IsSubscriber)

	_, ok = svc.ApplyCallback("Buy", domain.OutcomeAccepted, &attrs, msgs)
	assert.True(t, ok)
	assert.True(t, attrs.IsSubscriber)
}
