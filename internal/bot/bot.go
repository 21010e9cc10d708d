// Package bot is a Telegram front end for the tracker. It mirrors the HTTP
// adapter: every interaction goes through the same services.Tracker, so the
// bot and the API always see the same ledger.
package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally/internal/core"
	"tally/internal/log"
	"tally/internal/services"
)

// chatState tracks a pending add: the user picked a type and category and we
// are waiting for the "<amount> <title>" message.
type chatState struct {
	Type     core.Type
	Category string
}

type Bot struct {
	api     *tgbotapi.BotAPI
	tracker *services.Tracker
	logger  *log.Logger

	mu     sync.Mutex
	states map[int64]chatState
}

func New(token string, tracker *services.Tracker, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:     api,
		tracker: tracker,
		logger:  logger.WithComponent(log.ComponentBot),
		states:  make(map[int64]chatState),
	}, nil
}

// Run polls Telegram for updates until ctx is cancelled. Update handling
// errors are logged and never stop the loop.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Bot stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.handleUpdate(ctx, update); err != nil {
				b.logger.Error("Update handling failed", log.FieldError, err)
			}
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		return b.handleCommand(ctx, update.Message)
	case update.Message != nil:
		return b.handleMessage(ctx, update.Message)
	}
	return nil
}

func (b *Bot) state(chatID int64) (chatState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.states[chatID]
	return st, ok
}

func (b *Bot) setState(chatID int64, st chatState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states[chatID] = st
}

func (b *Bot) clearState(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.states, chatID)
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Send failed", log.FieldError, err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}
