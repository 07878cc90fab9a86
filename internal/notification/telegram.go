package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts reservation activity to the front-desk chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, staff notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, room *domain.Room) {
	n.send(ctx, createdText(r, room))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus) {
	n.send(ctx, statusText(r, from))
}

func createdText(r *domain.Reservation, room *domain.Room) string {
	return fmt.Sprintf(
		"*New reservation*\n\n"+"Room: %s (%s)\n"+"Stay: %s → %s, %d night(s)\n"+"Guest: %s\n"+"Party: %d adult(s), %d child(ren)\n"+"Total: %d\n"+"Payment: %s",
		room.Number, room.Type.Name,
		r.Range.CheckIn.Format(domain.DateLayout), r.Range.CheckOut.Format(domain.DateLayout), r.Range.Nights(),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, requesterLabel(r.Requester)),
		r.Party.Adults, r.Party.Children,
		r.TotalAmount(),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, string(r.PaymentMethod)),
	)
}

func statusText(r *domain.Reservation, from domain.ReservationStatus) string {
	return fmt.Sprintf(
		"*Reservation %s*\n\n"+"ID: `%s`\n"+"Room: `%s`\n"+"Stay: %s → %s\n"+"Status: %s → %s",
		r.Status, r.ID, r.RoomID,
		r.Range.CheckIn.Format(domain.DateLayout), r.Range.CheckOut.Format(domain.DateLayout),
		from, r.Status,
	)
}

func requesterLabel(id domain.RequesterIdentity) string {
	if id.IsGuest() {
		return fmt.Sprintf("%s, %s", id.Guest.Name, id.Guest.Phone)
	}
	return "account " + id.AccountID
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no staff chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
