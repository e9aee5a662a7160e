// Package notify delivers operator alerts over Telegram. Alerts are
// best-effort: delivery failures are logged and dropped so they never
// hold up a user response.
package notify

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Telegram sends alerts to a fixed operator chat. A Telegram built
// without a token is disabled and discards alerts.
type Telegram struct {
	bot    *tele.Bot
	chatID int64
	logger *zap.Logger
}

// New creates the notifier. An empty token yields a disabled notifier
// rather than an error so the service runs without one configured.
func New(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	if token == "" {
		logger.Info("operator alerts disabled, no telegram token configured")
		return &Telegram{logger: logger}, nil
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Telegram{bot: bot, chatID: chatID, logger: logger}, nil
}

// Alert implements service.Notifier.
func (t *Telegram) Alert(text string) {
	if t.bot == nil {
		return
	}
	go func() {
		if _, err := t.bot.Send(tele.ChatID(t.chatID), text); err != nil {
			t.logger.Warn("failed to deliver operator alert", zap.Error(err))
		}
	}()
}
