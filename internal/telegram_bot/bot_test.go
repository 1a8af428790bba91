package telegram_bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navio/internal/config"
	"navio/internal/models"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func ptr(s string) *string { return &s }

func TestNewBot_Disabled(t *testing.T) {
	bot, err := NewBot(&config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, bot)
	assert.False(t, bot.Enabled())
	assert.NoError(t, bot.Start(context.Background()))
}

func TestSendPanicAlert(t *testing.T) {
	fake := &fakeSender{}
	bot := &Bot{send: fake, alertChatID: 77, logger: zap.NewNop()}

	info := models.PanicInfo{
		UserID:                   "u1",
		FullName:                 ptr("Wanjiru K."),
		BloodType:                ptr("O+"),
		EmergencyContactName:     ptr("Achieng"),
		EmergencyContactRelation: ptr("sister"),
		EmergencyContactPhone:    ptr("+254700000000"),
	}
	require.NoError(t, bot.SendPanicAlert(context.Background(), info, models.AuthUser{ID: "u1", Email: "w@example.org"}))

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, int64(77), msg.ChatID)
	assert.Contains(t, msg.Text, "Name: Wanjiru K.")
	assert.Contains(t, msg.Text, "Blood type: O+")
	assert.Contains(t, msg.Text, "Medical conditions: -")
	assert.Contains(t, msg.Text, "Emergency contact: Achieng (sister), +254700000000")
	assert.Contains(t, msg.Text, "w@example.org")
}

func TestSendPanicAlert_Errors(t *testing.T) {
	bot := &Bot{send: &fakeSender{err: errors.New("network down")}, alertChatID: 1, logger: zap.NewNop()}
	err := bot.SendPanicAlert(context.Background(), models.PanicInfo{}, models.AuthUser{ID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bot.SendPanicAlert(ctx, models.PanicInfo{}, models.AuthUser{ID: "u1"}), context.Canceled)

	var disabled *Bot
	assert.Error(t, disabled.SendPanicAlert(context.Background(), models.PanicInfo{}, models.AuthUser{}))
}

func TestFormatAlert_Timestamp(t *testing.T) {
	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	text := formatAlert(models.PanicInfo{}, models.AuthUser{ID: "u9"}, at)
	assert.Contains(t, text, "User: - (u9)")
	assert.Contains(t, text, "Sent at 2026-03-01T08:30:00Z")
}
