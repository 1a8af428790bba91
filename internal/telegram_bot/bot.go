package telegram_bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"navio/internal/config"
	"navio/internal/models"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot delivers panic alerts to a single operator chat and answers /start and
// /help so operators can discover their chat id.
type Bot struct {
	api         *tgbotapi.BotAPI
	send        sender
	alertChatID int64
	logger      *zap.Logger
}

// NewBot returns nil without error when alerts are disabled.
func NewBot(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	if !cfg.Telegram.Enabled || cfg.Telegram.BotToken == "" {
		logger.Info("Telegram bot is disabled (telegram.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("alert_chat_id", cfg.Telegram.AlertChatID))

	return &Bot{
		api:         botAPI,
		send:        botAPI,
		alertChatID: cfg.Telegram.AlertChatID,
		logger:      logger,
	}, nil
}

// Enabled is safe to call on a nil *Bot.
func (b *Bot) Enabled() bool {
	return b != nil && b.send != nil && b.alertChatID != 0
}

// Start listens for bot commands until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if b == nil || b.api == nil {
		return nil
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Telegram bot started, waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Telegram bot shutting down...")
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message != nil {
				b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if !message.IsCommand() {
		return
	}
	switch message.Command() {
	case "start":
		b.sendMessage(message.Chat.ID, fmt.Sprintf(
			"Hello, %s!\n\nThis bot relays Navio panic alerts. Use /help to find the chat id to configure.",
			message.From.FirstName))
	case "help":
		b.sendMessage(message.Chat.ID, "/start - welcome message\n/help - this help\n\n"+
			"Set telegram.alert_chat_id to this chat id to receive panic alerts: "+
			strconv.FormatInt(message.Chat.ID, 10))
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help.")
	}
}

// SendPanicAlert posts the user's emergency card to the alert chat.
func (b *Bot) SendPanicAlert(ctx context.Context, info models.PanicInfo, user models.AuthUser) error {
	if !b.Enabled() {
		return fmt.Errorf("bot is disabled")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(b.alertChatID, formatAlert(info, user, time.Now().UTC()))
	if _, err := b.send.Send(msg); err != nil {
		b.logger.Error("Failed to send panic alert",
			zap.String("user_id", user.ID),
			zap.Int64("chat_id", b.alertChatID),
			zap.Error(err))
		return fmt.Errorf("failed to send panic alert: %w", err)
	}

	b.logger.Info("Panic alert delivered", zap.String("user_id", user.ID), zap.Int64("chat_id", b.alertChatID))
	return nil
}

func formatAlert(info models.PanicInfo, user models.AuthUser, at time.Time) string {
	var sb strings.Builder
	sb.WriteString("🚨 PANIC ALERT\n\n")
	fmt.Fprintf(&sb, "User: %s (%s)\n", orDash(&user.Email), user.ID)
	fmt.Fprintf(&sb, "Name: %s\n", orDash(info.FullName))
	fmt.Fprintf(&sb, "Blood type: %s\n", orDash(info.BloodType))
	fmt.Fprintf(&sb, "Medical conditions: %s\n", orDash(info.MedicalConditions))

	contact := orDash(info.EmergencyContactName)
	if info.EmergencyContactRelation != nil && *info.EmergencyContactRelation != "" {
		contact += " (" + *info.EmergencyContactRelation + ")"
	}
	fmt.Fprintf(&sb, "Emergency contact: %s, %s\n", contact, orDash(info.EmergencyContactPhone))
	fmt.Fprintf(&sb, "Trusted friend: %s\n", orDash(info.TrustedFriend))
	fmt.Fprintf(&sb, "Emergency hotline: %s\n", orDash(info.EmergencyHotline))
	fmt.Fprintf(&sb, "\nSent at %s", at.Format(time.RFC3339))
	return sb.String()
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.send.Send(msg); err != nil {
		b.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
