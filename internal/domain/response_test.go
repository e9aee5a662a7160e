package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTell(t *testing.T) {
	r := Tell("Goodbye! ")

	assert.True(t, r.ShouldEndSession)
	assert.Nil(t, r.Reprompt)
	assert.Equal(t, "SSML", r.OutputSpeech.Type)
	assert.Equal(t, "<speak>Goodbye! </speak>", r.OutputSpeech.SSML)
}

func TestAsk(t *testing.T) {
	r := Ask("Again? ", "Say yes or no. ")

	assert.False(t, r.ShouldEndSession)
	assert.Equal(t, "<speak>Again? </speak>", r.OutputSpeech.SSML)
	assert.Equal(t, "<speak>Say yes or no. </speak>", r.Reprompt.OutputSpeech.SSML)
}

func TestWithDirective(t *testing.T) {
	d := Directive{
		Type:    "Connections.SendRequest",
		Name:    string(PurchaseBuy),
		Payload: &DirectivePayload{InSkillProduct: &ProductRef{ProductID: "prod-1"}},
		Token:   PurchaseToken,
	}

	r := Tell("").WithDirective(d)
	assert.Len(t, r.Directives, 1)
	assert.Equal(t, "Buy", r.Directives[0].Name)
	assert.Equal(t, "subscriptionToken", r.Directives[0].Token)
}

func TestNewEnvelope(t *testing.T) {
	attrs := map[string]any{"state": "START"}
	env := NewEnvelope(attrs, Tell("bye"))

	assert.Equal(t, "1.0", env.Version)
	assert.Equal(t, attrs, env.SessionAttributes)
}
