package service

import (
	"go.uber.org/zap"

	"toneskill/internal/domain"
	"toneskill/internal/vocab"
)

// PurchaseService implements the purchase handshake: it builds the
// fire-and-forget directives handed to the platform purchase flow and
// applies the callback outcomes that arrive in later invocations.
type PurchaseService struct {
	notifier Notifier
	logger   *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(notifier Notifier, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{notifier: notifier, logger: logger}
}

// Directive builds the outbound purchase directive for an intent. For
// Upsell the promotional message rides along in the payload. The
// correlation token is fixed per intent type.
func (s *PurchaseService) Directive(intent domain.PurchaseIntent, productID, upsellMessage string) domain.Directive {
	s.logger.Info("issuing purchase directive",
		zap.String("intent", string(intent)),
		zap.String("product_id", productID),
	)

	payload := &domain.DirectivePayload{
		InSkillProduct: &domain.ProductRef{ProductID: productID},
	}
	if intent == domain.PurchaseUpsell {
		payload.UpsellMessage = upsellMessage
	}

	return domain.Directive{
		Type:    "Connections.SendRequest",
		Name:    string(intent),
		Payload: payload,
		Token:   domain.PurchaseToken,
	}
}

// ApplyCallback applies a purchase callback to the attributes and
// returns the speech to prepend to the next playback. ok is false
// when the callback name is not a known purchase intent and the turn
// should fall through to the confused response.
//
// Re-applying the same callback is safe: every transition assigns the
// subscriber flag rather than toggling it.
func (s *PurchaseService) ApplyCallback(name, outcome string, attrs *domain.Attributes, msgs vocab.Set) (speech string, ok bool) {
	if outcome == "" {
		// The platform omitted purchaseResult. Nothing to apply.
		s.logger.Error("purchase callback without purchaseResult",
			zap.String("name", name),
		)
		return vocab.ShortPause, true
	}

	switch domain.PurchaseIntent(name) {
	case domain.PurchaseBuy:
		return s.applyBuy(outcome, attrs, msgs)
	case domain.PurchaseCancel:
		return s.applyCancel(outcome, attrs, msgs), true
	case domain.PurchaseUpsell:
		if outcome == domain.OutcomeError {
			s.logger.Warn("purchase service error on upsell callback")
			return msgs.NoPurchase + vocab.ShortPause, true
		}
		return vocab.ShortPause, true
	}

	s.logger.Warn("unhandled purchase callback name", zap.String("name", name))
	return "", false
}

func (s *PurchaseService) applyBuy(outcome string, attrs *domain.Attributes, msgs vocab.Set) (string, bool) {
	switch outcome {
	case domain.OutcomeAccepted:
		attrs.IsSubscriber = true
		return vocab.ShortPause, true
	case domain.OutcomeDeclined:
		attrs.IsSubscriber = false
		return vocab.ShortPause, true
	case domain.OutcomeAlreadyPurchased:
		if !attrs.IsSubscriber {
			s.logger.Error("ALREADY_PURCHASED for a user not marked subscriber",
				zap.String("product_id", attrs.ProductID),
			)
			s.notifier.Alert("purchase state inconsistency: ALREADY_PURCHASED for non-subscriber")
			attrs.IsSubscriber = true
		}
		return msgs.AlreadySubscribed, true
	case domain.OutcomeError:
		s.logger.Warn("purchase service error on buy callback")
		return msgs.NoPurchase + vocab.ShortPause, true
	}
	s.logger.Error("illegal buy callback outcome", zap.String("outcome", outcome))
	return "", false
}

func (s *PurchaseService) applyCancel(outcome string, attrs *domain.Attributes, msgs vocab.Set) string {
	switch outcome {
	case domain.OutcomeAccepted:
		attrs.IsSubscriber = false
		return vocab.ShortPause
	case domain.OutcomeDeclined:
		return vocab.ShortPause
	case domain.OutcomeAlreadyPurchased:
		// Unexpected for Cancel, log only.
		s.logger.Warn("ALREADY_PURCHASED on cancel callback")
		return vocab.ShortPause
	case domain.OutcomeError:
		s.logger.Warn("purchase service error on cancel callback")
		return msgs.NoPurchase + vocab.ShortPause
	}
	s.logger.Error("illegal cancel callback outcome", zap.String("outcome", outcome))
	return vocab.ShortPause
}
