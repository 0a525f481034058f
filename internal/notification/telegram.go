package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

const windowFormat = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking received!*\n\n"+"Bike: %s\n"+"Slot (UTC): %s - %s\n"+"Complete the payment to confirm the slot.",
		bike.Name,
		booking.Window.From.Format(windowFormat),
		booking.Window.To.Format(windowFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Bike: %s\n"+"Slot (UTC): %s - %s\n"+"Amount paid: %d",
		bike.Name,
		booking.Window.From.Format(windowFormat),
		booking.Window.To.Format(windowFormat),
		booking.Cost,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingFailed(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired (payment was not completed in time)*\n\n"+"Bike: %s\n"+"Slot (UTC): %s - %s",
		bike.Name,
		booking.Window.From.Format(windowFormat),
		booking.Window.To.Format(windowFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
