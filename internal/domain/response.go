package domain

// Response limits enforced by the platform, not validated here.
// Spoken text may not exceed 8000 characters and the full envelope
// may not exceed 24 KB.

// Envelope is the outbound response returned to the platform.
type Envelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

// Response is the speech/directive portion of an envelope.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech carries SSML spoken content.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// Reprompt is spoken when the user stays silent after an open prompt.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Directive is an out-of-band instruction consumed by the platform.
type Directive struct {
	Type    string            `json:"type"`
	Name    string            `json:"name,omitempty"`
	Payload *DirectivePayload `json:"payload,omitempty"`
	Token   string            `json:"token,omitempty"`
}

// DirectivePayload is the purchase-directive payload.
type DirectivePayload struct {
	InSkillProduct *ProductRef `json:"InSkillProduct,omitempty"`
	UpsellMessage  string      `json:"upsellMessage,omitempty"`
}

// ProductRef names the product a purchase directive acts on.
type ProductRef struct {
	ProductID string `json:"productId"`
}

func speech(text string) OutputSpeech {
	return OutputSpeech{Type: "SSML", SSML: "<speak>" + text + "</speak>"}
}

// Tell builds a terminal response: speak and end the session.
func Tell(text string) Response {
	out := speech(text)
	return Response{OutputSpeech: &out, ShouldEndSession: true}
}

// Ask builds an open response: speak, keep the session open, and
// reprompt on silence.
func Ask(text, reprompt string) Response {
	out := speech(text)
	return Response{
		OutputSpeech:     &out,
		Reprompt:         &Reprompt{OutputSpeech: speech(reprompt)},
		ShouldEndSession: false,
	}
}

// WithDirective returns a copy of the response with the directive
// appended.
func (r Response) WithDirective(d Directive) Response {
	r.Directives = append(r.Directives, d)
	return r
}

// NewEnvelope wraps a response with session attributes.
func NewEnvelope(attributes map[string]any, r Response) Envelope {
	return Envelope{
		Version:           "1.0",
		SessionAttributes: attributes,
		Response:          r,
	}
}

// EmptyEnvelope is returned where the platform ignores the body, such
// as after a SessionEndedRequest.
func EmptyEnvelope() Envelope {
	return Envelope{Version: "1.0"}
}
