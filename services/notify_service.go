// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NotifyService sends the daily debt summary over Telegram. Disabled when
// TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is not set.
type NotifyService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifyService() *NotifyService {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatIDStr == "" {
		return &NotifyService{}
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		log.Printf("notify: invalid TELEGRAM_CHAT_ID %q: %v", chatIDStr, err)
		return &NotifyService{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("notify: telegram bot init failed: %v", err)
		return &NotifyService{}
	}

	return &NotifyService{bot: bot, chatID: chatID}
}

// Enabled reports whether the Telegram channel is configured.
func (n *NotifyService) Enabled() bool {
	return n.bot != nil
}

// SendDebtSummary pushes the current total debt and today's count.
func (n *NotifyService) SendDebtSummary() error {
	if !n.Enabled() {
		return nil
	}

	total, _, err := ComputeDebt(time.Now())
	if err != nil {
		return err
	}
	count, err := GetDailyCount()
	if err != nil {
		return err
	}

	text := fmt.Sprintf("EasyVocab daily summary\nToday reviewed: %d words\nTotal word debt: %d", count, total)
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err = n.bot.Send(msg)
	return err
}
