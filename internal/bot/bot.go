// Package bot is the chat command surface. It shares the classifier and
// resolver with the HTTP surface and adds message formatting plus chunking
// for the transport's size limit.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/iconidentify/tunelink/internal/domain"
)

const (
	welcomeText = "👋 Welcome to the tunelink bot!\n\n" +
		"🎵 Send /getapi <link or song name> to resolve a playable stream.\n" +
		"🔎 Send /search <query> to look up videos.\n" +
		"Use /help for the full command list."

	helpText = "Commands:\n" +
		"/start - welcome message\n" +
		"/help - this message\n" +
		"/ping - check the bot is alive\n" +
		"/search <query> - top matching videos\n" +
		"/getapi <link or text> - resolve full metadata and stream URL\n" +
		"/getapi - (owner only) your self-hosted API credentials"

	deniedText = "❌ You are not authorized to use this command!"
)

// MediaService is the resolution capability the bot commands use.
type MediaService interface {
	Resolve(ctx context.Context, input string) (*domain.MediaRecord, error)
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

// sender is the outbound half of the chat transport.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Config holds the bot surface settings.
type Config struct {
	Token   string
	OwnerID int64
	Secret  string
	BaseURL string
}

// Bot is the long-lived chat command surface.
type Bot struct {
	api     *tgbotapi.BotAPI
	send    sender
	svc     MediaService
	ownerID int64
	secret  string
	baseURL string
	logger  *slog.Logger

	wg sync.WaitGroup
}

// New connects to the chat transport and prepares the command surface.
func New(cfg Config, svc MediaService, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("connect bot transport: %w", err)
	}

	logger.Info("bot transport connected", "username", api.Self.UserName)

	return &Bot{
		api:     api,
		send:    api,
		svc:     svc,
		ownerID: cfg.OwnerID,
		secret:  cfg.Secret,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}, nil
}

// Start launches the update loop. Each inbound command is handled on the
// loop goroutine; failures are answered and logged, never fatal.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for update := range updates {
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(context.Background(), update.Message)
		}
	}()
}

// Stop tears down the transport connection. Shutdown is best effort; nothing
// here escalates.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	b.wg.Wait()
	b.logger.Info("bot surface stopped")
}

// handleCommand dispatches a single command. Every resolution error is
// contained here and reported back as one short message.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("command handler panic", "command", msg.Command(), "panic", r)
		}
	}()

	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeText)
	case "help":
		b.reply(msg.Chat.ID, helpText)
	case "ping":
		b.reply(msg.Chat.ID, "🏓 Pong!")
	case "search":
		b.handleSearch(ctx, msg)
	case "getapi":
		b.handleGetAPI(ctx, msg)
	}
}

func (b *Bot) handleSearch(ctx context.Context, msg *tgbotapi.Message) {
	query := msg.CommandArguments()
	if query == "" {
		b.reply(msg.Chat.ID, "Usage: /search <query>")
		return
	}

	hits, err := b.svc.Search(ctx, query, 5)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	if len(hits) == 0 {
		b.reply(msg.Chat.ID, "No results found.")
		return
	}

	b.reply(msg.Chat.ID, formatHits(hits))
}

func (b *Bot) handleGetAPI(ctx context.Context, msg *tgbotapi.Message) {
	arg := msg.CommandArguments()

	// Bare /getapi is the privileged credentials command.
	if arg == "" {
		if msg.From == nil || msg.From.ID != b.ownerID {
			b.reply(msg.Chat.ID, deniedText)
			return
		}
		b.reply(msg.Chat.ID, b.credentialsText())
		return
	}

	rec, err := b.svc.Resolve(ctx, arg)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	details := formatRecord(rec)

	if rec.Thumbnail != nil {
		photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileURL(*rec.Thumbnail))
		photo.Caption = "🎵 Resolved!"
		if _, err := b.send.Send(photo); err != nil {
			b.logger.Error("send photo failed", "error", err)
		}
	}

	b.reply(msg.Chat.ID, details)
}

func (b *Bot) credentialsText() string {
	return "✅ Your Self-Hosted API Details ✅\n\n" +
		fmt.Sprintf("🌍 Base URL: %s\n", b.baseURL) +
		fmt.Sprintf("🔑 API Key: %s\n\n", b.secret) +
		"⚡ Paste this into your music bot to play unlimited music 🎶"
}

// reply sends text to a chat, chunked to the transport's size limit.
func (b *Bot) reply(chatID int64, text string) {
	for _, chunk := range Chunk(text, messageChunkSize) {
		if _, err := b.send.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			b.logger.Error("send message failed", "error", err)
		}
	}
}

// replyError reports a resolution failure as one short message.
func (b *Bot) replyError(chatID int64, err error) {
	if errors.Is(err, domain.ErrNoResults) {
		b.reply(chatID, "No results found.")
		return
	}
	b.reply(chatID, "❌ "+err.Error())
}
