package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally/internal/core"
	"tally/internal/log"
)

const welcomeText = "Welcome to Tally! 💰\n\n" +
	"I keep a running ledger of your income and expenses and can show a " +
	"summary over the last day, week, month or year.\n\n" +
	"Commands:\n" +
	"/add - record a transaction\n" +
	"/report - summary for the current period\n" +
	"/history - recent transactions\n" +
	"/period - change the reporting period"

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	switch message.Command() {
	case "start", "help":
		msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
		msg.ReplyMarkup = mainKeyboard()
		b.send(msg)
	case "add":
		b.askType(message.Chat.ID)
	case "report":
		b.sendReport(ctx, message.Chat.ID)
	case "history":
		b.sendHistory(message.Chat.ID)
	case "period":
		msg := tgbotapi.NewMessage(message.Chat.ID, "Pick a reporting period:")
		msg.ReplyMarkup = periodKeyboard()
		b.send(msg)
	default:
		b.sendText(message.Chat.ID, "Unknown command. Try /help.")
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "type:"):
		typ, err := core.ParseType(strings.TrimPrefix(data, "type:"))
		if err != nil {
			b.sendText(chatID, "❌ Unknown transaction type.")
			break
		}
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Pick a category for the %s:", typ))
		msg.ReplyMarkup = categoryKeyboard(typ)
		b.send(msg)

	case strings.HasPrefix(data, "cat:"):
		parts := strings.SplitN(strings.TrimPrefix(data, "cat:"), ":", 2)
		if len(parts) != 2 {
			break
		}
		typ, err := core.ParseType(parts[0])
		if err != nil || !core.KnownCategory(typ, parts[1]) {
			b.sendText(chatID, "❌ Unknown category.")
			break
		}
		b.setState(chatID, chatState{Type: typ, Category: parts[1]})
		b.sendText(chatID, fmt.Sprintf("Category: %s\nNow send the amount and a title, for example:\n250.50 weekly groceries", parts[1]))

	case strings.HasPrefix(data, "period:"):
		period, err := core.ParsePeriod(strings.TrimPrefix(data, "period:"))
		if err != nil {
			b.sendText(chatID, "❌ Unknown period.")
			break
		}
		if err := b.tracker.SetPeriod(ctx, period); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			break
		}
		b.sendText(chatID, fmt.Sprintf("Reporting period set to %s ✅", period))

	case data == "report":
		b.sendReport(ctx, chatID)
	}

	// Acknowledge the callback so the client drops its loading indicator.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Error("Callback ack failed", log.FieldError, err)
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	st, ok := b.state(chatID)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "Pick an action:")
		msg.ReplyMarkup = mainKeyboard()
		b.send(msg)
		return nil
	}

	amountText, title, found := strings.Cut(strings.TrimSpace(message.Text), " ")
	if !found {
		b.sendText(chatID, "❌ Wrong format. Send: <amount> <title>")
		return nil
	}

	amount, err := core.ParseAmount(amountText)
	if err != nil {
		b.sendText(chatID, "❌ Bad amount. Send a positive number, for example: 1000.50")
		return nil
	}

	tx, err := b.tracker.AddTransaction(ctx, core.Draft{
		Title:    strings.TrimSpace(title),
		Amount:   amount,
		Type:     st.Type,
		Category: st.Category,
	})
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return nil
	}

	b.clearState(chatID)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Recorded %s %s (%s) ✅", tx.Amount, tx.Title, tx.Category))
	msg.ReplyMarkup = mainKeyboard()
	b.send(msg)
	return nil
}

func (b *Bot) askType(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "What are we recording?")
	msg.ReplyMarkup = typeKeyboard()
	b.send(msg)
}

func (b *Bot) sendReport(ctx context.Context, chatID int64) {
	period := b.tracker.Period()
	summary := b.tracker.Summary(ctx)
	income := b.tracker.Breakdown(ctx, core.Income)
	expense := b.tracker.Breakdown(ctx, core.Expense)
	b.sendText(chatID, renderReport(period, summary, income, expense))
}

func (b *Bot) sendHistory(chatID int64) {
	b.sendText(chatID, renderHistory(b.tracker.Recent(historyLimit)))
}
