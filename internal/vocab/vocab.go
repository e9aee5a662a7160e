// Package vocab holds the locale string tables. Text is SSML and is
// concatenated by the handlers, so entries end with a trailing space.
package vocab

// ShortPause is inserted where the platform speaks on our behalf and
// the response itself has nothing to add.
const ShortPause = "<break time='1s'/> "

// Set is the message table for one locale.
type Set struct {
	Welcome           string
	Stop              string
	FreeHelp          string
	SubscriberHelp    string
	ConfusedYes       string
	ConfusedNo        string
	FreeFallback      string
	Fallback          string
	FallbackReprompt  string
	CanBuy            string
	UpsellMessage     string
	AlreadySubscribed string
	NoPurchase        string
	FreeTone          string
	FreeFollowup      string
	SubscriberPrompt  string
}

var tables = map[string]Set{
	"en-US": {
		Welcome: "Welcome to Tone Therapy. When you return to this " +
			"skill in the future, I'll play a three minute session of " +
			"peaceful, healing tones. These are free samples that have " +
			"been pre-recorded. If you would like to hear tone sessions " +
			"created for you in the moment just say, what can I buy? ",
		Stop: "Ok. Goodbye! ",
		FreeHelp: "One of three, free, pre-recorded, Tone Therapy " +
			"sessions will play for three minutes each time you open " +
			"this skill. The premium version offers sessions composed " +
			"in the moment just for you, and they never repeat. You " +
			"can learn more by saying, tell me about premium. ",
		SubscriberHelp: "When I ask, just say, play for, the number " +
			"of minutes or hours you want to play. ",
		ConfusedYes: "I'm sorry, but I don't understand what you are " +
			"saying yes for. ",
		ConfusedNo: "I'm sorry, but I don't understand what you are " +
			"saying no for. ",
		FreeFallback: "I'm sorry, I don't understand what you want. " +
			"You can say, help, for more help. Here is another free " +
			"tone. ",
		Fallback:         "I'm sorry, I don't understand what you want. Try again. ",
		FallbackReprompt: "Please try asking that a different way. ",
		CanBuy: "You can buy a subscription to Tone Therapy premium. " +
			"<break time='0.5s'/> Each time you open it you'll hear a " +
			"different tone session. There's no repetition. Just say, " +
			"I want tone therapy premium. Until then ",
		UpsellMessage: "Tone Therapy premium offers sessions that " +
			"never repeat, composed in the moment, just for you. Do " +
			"you want to learn more? ",
		AlreadySubscribed: "Congratulations, you already have a subscription. ",
		NoPurchase: "Sorry, I can't seem to connect to the purchasing " +
			"service right now. ",
		FreeTone:         "Ok, here is your session. ",
		FreeFollowup:     "<break time='5s'/> Would you like another session? ",
		SubscriberPrompt: "Do you want to try again? ",
	},
}

// Messages returns the table for the locale, falling back to en-US.
func Messages(locale string) Set {
	if set, ok := tables[locale]; ok {
		return set
	}
	return tables["en-US"]
}
