package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"toneskill/internal/domain"
	"toneskill/internal/repository"
	"toneskill/internal/vocab"
)

// Pre-recorded free-tier sessions, rotated by play count.
var freeTracks = []string{
	"free/session1.mp3",
	"free/session2.mp3",
	"free/session3.mp3",
}

const subscriberTrack = "premium/session.mp3"

// Every upsellEvery-th free play pitches the premium tier through
// the platform upsell flow instead of the followup prompt.
const upsellEvery = 5

// SessionService is the conversation state machine. Each method
// handles one inbound turn: it loads the user's attributes, applies
// the transition for the current state and intent, persists, and
// builds the response envelope.
type SessionService struct {
	repo      repository.AttributeRepository
	products  EntitlementFetcher
	purchase  *PurchaseService
	assetBase string
	logger    *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	repo repository.AttributeRepository,
	products EntitlementFetcher,
	purchase *PurchaseService,
	assetBase string,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		repo:      repo,
		products:  products,
		purchase:  purchase,
		assetBase: assetBase,
		logger:    logger,
	}
}

// Launch starts a session: refreshes the entitlement snapshot, resets
// the state to START and routes into tier-appropriate playback. First
// contact gets the welcome message prefixed.
func (s *SessionService) Launch(ctx context.Context, ev *domain.Event) domain.Envelope {
	userID := ev.UserID()
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())

	speech := ""
	if attrs.FirstContact() {
		attrs.IsSubscriber = false
		speech = msgs.Welcome + vocab.ShortPause
	}
	attrs.VisitCount++
	attrs.State = domain.StateStart

	products := s.products.Fetch(ctx, ev.APIEndpoint(), ev.AccessToken(), ev.Locale())
	if len(products) == 0 {
		// Nothing to buy or sell this session.
		attrs.ProductID = ""
	} else {
		// Single-product skill: the first product wins.
		attrs.ProductID = products[0].ProductID
		attrs.IsSubscriber = products[0].Entitled == EntitlementStatus
	}
	s.persist(userID, &attrs)

	s.logger.Info("session launched",
		zap.String("user_id", userID),
		zap.Int("visit_count", attrs.VisitCount),
		zap.Bool("is_subscriber", attrs.IsSubscriber),
	)

	if attrs.IsSubscriber {
		return s.playSubscriber(userID, &attrs, speech, msgs)
	}
	return s.playFree(userID, &attrs, speech, msgs)
}

// HandleIntent routes a resolved intent through the state machine.
func (s *SessionService) HandleIntent(ctx context.Context, ev *domain.Event) domain.Envelope {
	name := ev.IntentName()
	s.logger.Info("handling intent",
		zap.String("user_id", ev.UserID()),
		zap.String("intent", name),
	)

	switch name {
	case domain.IntentStop, domain.IntentCancel:
		return s.Closing(ev)
	case domain.IntentHelp:
		return s.help(ev)
	case domain.IntentCanBuy:
		return s.canBuy(ev)
	case domain.IntentBuy:
		return s.buy(ev)
	case domain.IntentRefund:
		return s.refund(ev)
	case domain.IntentYes:
		return s.yes(ev)
	case domain.IntentNo:
		return s.no(ev)
	}

	s.logger.Warn("unhandled intent", zap.String("intent", name))
	return s.Confused(ev)
}

// HandleCallback applies an asynchronous purchase callback and routes
// back into playback.
func (s *SessionService) HandleCallback(ctx context.Context, ev *domain.Event) domain.Envelope {
	userID := ev.UserID()
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())

	speech, ok := s.purchase.ApplyCallback(ev.Request.Name, ev.PurchaseResult(), &attrs, msgs)
	if !ok {
		return s.Confused(ev)
	}

	s.persist(userID, &attrs)
	return s.choice(userID, &attrs, speech, msgs)
}

// SessionEnded persists attributes; the platform ignores the body.
func (s *SessionService) SessionEnded(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	s.persist(ev.UserID(), &attrs)
	return domain.EmptyEnvelope()
}

// UserEvent handles custom UI events from display devices. Item
// selections route back into playback; anything else is logged and
// ignored.
func (s *SessionService) UserEvent(ev *domain.Event) domain.Envelope {
	args := ev.Request.Arguments
	if len(args) > 0 && args[0] == "itemSelected" {
		s.logger.Info("item selected on display device", zap.String("user_id", ev.UserID()))
		attrs := s.loadAttributes(ev)
		return s.choice(ev.UserID(), &attrs, "", vocab.Messages(ev.Locale()))
	}
	s.logger.Warn("unrecognized user event", zap.Any("arguments", args))
	return domain.EmptyEnvelope()
}

// Closing persists attributes and says goodbye, ending the session.
func (s *SessionService) Closing(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())
	s.persist(ev.UserID(), &attrs)
	return domain.NewEnvelope(attrs.ToMap(), domain.Tell(msgs.Stop))
}

// Confused is the fallback for unrecognized input. Subscribers get an
// open prompt; the free tier routes back into playback so the session
// always ends on content.
func (s *SessionService) Confused(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())
	if attrs.IsSubscriber {
		return domain.NewEnvelope(attrs.ToMap(), domain.Ask(msgs.Fallback, msgs.FallbackReprompt))
	}
	return s.playFree(ev.UserID(), &attrs, msgs.FreeFallback, msgs)
}

// help emits tier-appropriate help. The conversation state is left
// alone so a pending yes/no prompt stays answerable.
func (s *SessionService) help(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())
	text := msgs.FreeHelp
	if attrs.IsSubscriber {
		text = msgs.SubscriberHelp
	}
	return domain.NewEnvelope(attrs.ToMap(), domain.Ask(text, msgs.FallbackReprompt))
}

func (s *SessionService) canBuy(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())
	if attrs.IsSubscriber {
		return s.playSubscriber(ev.UserID(), &attrs, msgs.AlreadySubscribed, msgs)
	}
	return s.playFree(ev.UserID(), &attrs, msgs.CanBuy, msgs)
}

func (s *SessionService) buy(ev *domain.Event) domain.Envelope {
	userID := ev.UserID()
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())

	if attrs.IsSubscriber {
		return s.playSubscriber(userID, &attrs, msgs.AlreadySubscribed, msgs)
	}
	if attrs.ProductID == "" {
		return s.playFree(userID, &attrs, msgs.NoPurchase, msgs)
	}

	// Hand off to the platform purchase flow; it speaks from here.
	directive := s.purchase.Directive(domain.PurchaseBuy, attrs.ProductID, "")
	s.persist(userID, &attrs)
	return domain.NewEnvelope(attrs.ToMap(), domain.Tell("").WithDirective(directive))
}

func (s *SessionService) refund(ev *domain.Event) domain.Envelope {
	userID := ev.UserID()
	attrs := s.loadAttributes(ev)

	directive := s.purchase.Directive(domain.PurchaseCancel, attrs.ProductID, "")
	s.persist(userID, &attrs)
	return domain.NewEnvelope(attrs.ToMap(), domain.Tell("").WithDirective(directive))
}

func (s *SessionService) yes(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())

	if attrs.State == domain.StateToneFollowup {
		attrs.State = domain.StateStart
		return s.choice(ev.UserID(), &attrs, "", msgs)
	}

	s.logger.Warn("yes intent outside followup state",
		zap.String("state", string(attrs.State)),
	)
	return s.choice(ev.UserID(), &attrs, msgs.ConfusedYes, msgs)
}

func (s *SessionService) no(ev *domain.Event) domain.Envelope {
	attrs := s.loadAttributes(ev)
	msgs := vocab.Messages(ev.Locale())

	if attrs.State == domain.StateToneFollowup {
		attrs.State = domain.StateStart
		s.persist(ev.UserID(), &attrs)
		return domain.NewEnvelope(attrs.ToMap(), domain.Tell(msgs.Stop))
	}

	s.logger.Warn("no intent outside followup state",
		zap.String("state", string(attrs.State)),
	)
	return s.choice(ev.UserID(), &attrs, msgs.ConfusedNo, msgs)
}

// choice routes into tier-appropriate playback after a transition,
// the common tail of the callback and yes/no paths.
func (s *SessionService) choice(userID string, attrs *domain.Attributes, speech string, msgs vocab.Set) domain.Envelope {
	if attrs.IsSubscriber {
		return s.playSubscriber(userID, attrs, speech, msgs)
	}
	return s.playFree(userID, attrs, speech, msgs)
}

// playFree plays a pre-recorded free-tier session followed by the
// yes/no followup prompt, moving the state to TONE_FOLLOWUP.
func (s *SessionService) playFree(userID string, attrs *domain.Attributes, speech string, msgs vocab.Set) domain.Envelope {
	attrs.FreeCount++
	track := freeTracks[attrs.FreeCount%len(freeTracks)]
	audio := s.audioTag(track)

	if attrs.ProductID != "" && attrs.FreeCount%upsellEvery == 0 {
		attrs.State = domain.StateStart
		s.persist(userID, attrs)
		directive := s.purchase.Directive(domain.PurchaseUpsell, attrs.ProductID, msgs.UpsellMessage)
		return domain.NewEnvelope(attrs.ToMap(),
			domain.Tell(speech+msgs.FreeTone+audio).WithDirective(directive))
	}

	output := speech + msgs.FreeTone + audio + msgs.FreeFollowup

	attrs.State = domain.StateToneFollowup
	s.persist(userID, attrs)
	return domain.NewEnvelope(attrs.ToMap(), domain.Ask(output, msgs.FreeFollowup))
}

// playSubscriber plays a subscriber session and asks to go again,
// moving the state to TONE_FOLLOWUP.
func (s *SessionService) playSubscriber(userID string, attrs *domain.Attributes, speech string, msgs vocab.Set) domain.Envelope {
	attrs.SubscriberCount++
	output := speech + s.audioTag(subscriberTrack) + msgs.SubscriberPrompt

	attrs.State = domain.StateToneFollowup
	s.persist(userID, attrs)
	return domain.NewEnvelope(attrs.ToMap(), domain.Ask(output, msgs.SubscriberPrompt))
}

func (s *SessionService) audioTag(track string) string {
	return fmt.Sprintf("<audio src=%q /> ", s.assetBase+track)
}

// loadAttributes prefers the live session copy over a store read. A
// store failure yields an empty record so the turn still completes.
func (s *SessionService) loadAttributes(ev *domain.Event) domain.Attributes {
	if session := ev.SessionAttributes(); session != nil {
		return domain.FromMap(session)
	}

	data, err := s.repo.Get(ev.UserID())
	if err != nil {
		s.logger.Error("failed to load attributes",
			zap.String("user_id", ev.UserID()),
			zap.Error(err),
		)
		return domain.FromMap(nil)
	}
	return domain.FromMap(data)
}

// persist writes attributes best-effort: a store failure is logged
// and never blocks the user-facing response.
func (s *SessionService) persist(userID string, attrs *domain.Attributes) {
	if err := s.repo.Put(userID, attrs.ToMap()); err != nil {
		s.logger.Error("failed to persist attributes",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
