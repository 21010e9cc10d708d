package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally/internal/core"
)

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Income", "type:income"),
			tgbotapi.NewInlineKeyboardButtonData("💸 Expense", "type:expense"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Report", "report"),
		),
	)
}

func typeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Income", "type:income"),
			tgbotapi.NewInlineKeyboardButtonData("💸 Expense", "type:expense"),
		),
	)
}

// categoryKeyboard lays out the vocabulary for one type, one button per row.
func categoryKeyboard(t core.Type) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range core.Categories(t) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, "cat:"+string(t)+":"+name),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func periodKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, p := range core.AllPeriods() {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(p.String(), "period:"+p.String()))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
}
