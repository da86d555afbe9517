package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes operational events to the admin chat. All methods are
// best effort and nil-safe, so an unconfigured bot degrades to a no-op.
type Notifier interface {
	NotifyNewRegistration(name, email string)
	NotifyContactMessage(name, email, subject string)
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier returns nil when no token is configured; callers
// treat a nil Notifier as disabled.
func NewTelegramNotifier(botToken string, chatID int64) Notifier {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] bot init failed, notifications disabled: %v", err)
		return nil
	}
	log.Printf("[tg] notifications enabled as @%s", bot.Self.UserName)
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (t *telegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send] failed: %v", err)
	}
}

func (t *telegramNotifier) NotifyNewRegistration(name, email string) {
	t.send(fmt.Sprintf("🎓 New registration: <b>%s</b> (%s)", name, email))
}

func (t *telegramNotifier) NotifyContactMessage(name, email, subject string) {
	t.send(fmt.Sprintf("✉️ Contact message from <b>%s</b> (%s): %s", name, email, subject))
}
