package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/glebk/birthday-bot/internal/domain"
	"github.com/glebk/birthday-bot/internal/lang"
	"github.com/glebk/birthday-bot/internal/lookup"
	"github.com/glebk/birthday-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// botAPI adds update polling to telegramAPI
type botAPI interface {
	telegramAPI
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot represents the Telegram bot
type Bot struct {
	api     botAPI
	selfID  int64
	service *service.BirthdayService
	labels  *lang.Labels
	log     *zap.Logger
	wg      sync.WaitGroup
}

// New creates a new Bot instance
func New(api *tgbotapi.BotAPI, service *service.BirthdayService, labels *lang.Labels, log *zap.Logger) *Bot {
	log.Info("Authorized on account", zap.String("username", api.Self.UserName))
	return newBot(api, api.Self.ID, service, labels, log)
}

func newBot(api botAPI, selfID int64, service *service.BirthdayService, labels *lang.Labels, log *zap.Logger) *Bot {
	return &Bot{
		api:     api,
		selfID:  selfID,
		service: service,
		labels:  labels,
		log:     log,
	}
}

// Start polls for updates until ctx is cancelled. Every update is handled
// in its own goroutine; Start waits for them before returning.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			b.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(ctx, message)
			}(update.Message)
		}
	}
}

// handleMessage handles incoming messages
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if !message.IsCommand() {
		return
	}

	command := strings.ToLower(message.Command())
	b.log.Info("Issued command",
		zap.String("command", command),
		zap.Int64("chat_id", message.Chat.ID),
	)

	switch command {
	case "help":
		b.reply(message, lang.Help)
	case "start":
		b.handleStart(message)
	case "info":
		b.handleInfo(message)
	case "addmybirthday":
		b.handleAddMyBirthday(ctx, message)
	case "addbirthday":
		b.handleAddBirthday(ctx, message)
	case "removemybirthday":
		b.handleRemoveMyBirthday(ctx, message)
	case "removegroup":
		b.handleRemoveGroup(ctx, message)
	case "removeallmybirthdays":
		b.handleRemoveAllMyBirthdays(ctx, message)
	case "mytimezone":
		b.handleMyTimezone(ctx, message)
	case "grouptimezone":
		b.handleGroupTimezone(ctx, message)
	default:
		// commands addressed to other bots are common in groups
		if message.Chat.IsPrivate() {
			b.reply(message, lang.UnknownCommand)
		}
	}
}

// handleStart warns a group when the bot cannot pin its wishes
func (b *Bot) handleStart(message *tgbotapi.Message) {
	if !isGroup(message.Chat) {
		b.reply(message, lang.StartPrivate)
		return
	}

	me, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: message.Chat.ID, UserID: b.selfID},
	})
	if err != nil {
		b.log.Warn("Failed to get own membership", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	} else if !me.IsCreator() && !me.CanPinMessages {
		b.reply(message, lang.NoPinPermission)
		return
	}

	b.reply(message, lang.StartGroup)
}

func (b *Bot) handleInfo(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, b.labels.Get(locale(message), lang.Info))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send info", zap.Error(err))
	}
}

func (b *Bot) handleAddMyBirthday(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireGroup(message) {
		return
	}
	if message.From == nil {
		b.reply(message, lang.ErrCouldntGetUserID)
		return
	}

	year, month, day, err := parseDate(message.CommandArguments())
	if err != nil {
		b.reply(message, lang.ErrInvalidDate)
		return
	}

	b.addBirthday(ctx, message, domain.ResolvedRef{UserID: message.From.ID}, year, month, day)
}

// handleAddBirthday adds the birthday of the user mentioned in the command,
// either by @handle or by a text mention for users without one
func (b *Bot) handleAddBirthday(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireGroup(message) {
		return
	}

	fields := strings.Fields(message.CommandArguments())
	if len(fields) == 0 {
		b.reply(message, lang.ErrInvalidDate)
		return
	}
	year, month, day, err := parseDate(fields[len(fields)-1])
	if err != nil {
		b.reply(message, lang.ErrInvalidDate)
		return
	}

	ref, ok := recipientRef(message)
	if !ok {
		b.reply(message, lang.ErrMissingRecipient)
		return
	}

	b.addBirthday(ctx, message, ref, year, month, day)
}

func (b *Bot) addBirthday(ctx context.Context, message *tgbotapi.Message, ref domain.RecipientRef, year, month, day int) {
	added, err := b.service.AddBirthday(ctx, ref, message.Chat.ID, locale(message), year, month, day)
	if err != nil {
		key := addErrorLabel(err)
		if key == lang.ErrInternal || key == lang.ErrCouldntGetUserID {
			b.log.Error("Failed to add birthday", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		}
		b.reply(message, key)
		return
	}

	if added {
		b.reply(message, lang.BirthdayAdded)
	} else {
		b.reply(message, lang.BirthdayExists)
	}
}

func (b *Bot) handleRemoveMyBirthday(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireGroup(message) {
		return
	}
	if message.From == nil {
		b.reply(message, lang.ErrCouldntGetUserID)
		return
	}

	b.done(message, b.service.RemoveBirthday(ctx, message.From.ID, message.Chat.ID))
}

func (b *Bot) handleRemoveGroup(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireGroup(message) || !b.requireAdmin(message) {
		return
	}

	b.done(message, b.service.RemoveGroup(ctx, message.Chat.ID))
}

func (b *Bot) handleRemoveAllMyBirthdays(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		b.reply(message, lang.ErrCouldntGetUserID)
		return
	}

	b.done(message, b.service.RemoveAllBirthdays(ctx, message.From.ID))
}

func (b *Bot) handleMyTimezone(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		b.reply(message, lang.ErrCouldntGetUserID)
		return
	}

	hours, err := parseOffset(message.CommandArguments())
	if err != nil {
		b.reply(message, lang.ErrInvalidOffset)
		return
	}

	b.timezoneSet(message, b.service.SetUserTimezone(ctx, message.From.ID, hours))
}

func (b *Bot) handleGroupTimezone(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireGroup(message) || !b.requireAdmin(message) {
		return
	}

	hours, err := parseOffset(message.CommandArguments())
	if err != nil {
		b.reply(message, lang.ErrInvalidOffset)
		return
	}

	b.timezoneSet(message, b.service.SetGroupTimezone(ctx, message.Chat.ID, hours))
}

func (b *Bot) timezoneSet(message *tgbotapi.Message, err error) {
	switch {
	case err == nil:
		b.reply(message, lang.TimezoneSet)
	case errors.Is(err, domain.ErrInvalidOffset):
		b.reply(message, lang.ErrInvalidOffset)
	default:
		b.log.Error("Failed to set timezone", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		b.reply(message, lang.ErrInternal)
	}
}

func (b *Bot) done(message *tgbotapi.Message, err error) {
	if err != nil {
		b.log.Error("Failed to remove birthdays", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		b.reply(message, lang.ErrInternal)
		return
	}
	b.reply(message, lang.Done)
}

func (b *Bot) requireGroup(message *tgbotapi.Message) bool {
	if isGroup(message.Chat) {
		return true
	}
	b.reply(message, lang.ErrOnlyGroups)
	return false
}

func (b *Bot) requireAdmin(message *tgbotapi.Message) bool {
	if message.From == nil {
		b.reply(message, lang.ErrCouldntGetUserID)
		return false
	}

	admins, err := b.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: message.Chat.ChatConfig(),
	})
	if err != nil {
		b.log.Error("Failed to get chat administrators", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		b.reply(message, lang.ErrInternal)
		return false
	}

	for _, admin := range admins {
		if admin.User != nil && admin.User.ID == message.From.ID {
			return true
		}
	}

	b.reply(message, lang.ErrDenied)
	return false
}

// reply sends the label key in the sender's language
func (b *Bot) reply(message *tgbotapi.Message, key string) {
	b.sendMessage(message.Chat.ID, b.labels.Get(locale(message), key))
}

// sendMessage sends a simple text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func addErrorLabel(err error) string {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return lang.ErrInvalidDate
	case errors.Is(err, lookup.ErrInvalidUsername):
		return lang.ErrUsernameInvalid
	case errors.Is(err, domain.ErrUserNotFound):
		return lang.ErrUserNotFound
	case errors.As(err, &storageErr):
		return lang.ErrInternal
	default:
		return lang.ErrCouldntGetUserID
	}
}

func isGroup(chat *tgbotapi.Chat) bool {
	return chat != nil && (chat.IsGroup() || chat.IsSuperGroup())
}

func locale(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	return message.From.LanguageCode
}

// parseDate parses YYYY/MM/DD. Ranges are checked when the birthday is added.
func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, domain.ErrInvalidDate
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidDate, part)
		}
		nums[i] = int(n)
	}

	return nums[0], nums[1], nums[2], nil
}

// parseOffset parses a whole hour offset such as "+2", "-5" or "UTC+3"
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 3 && strings.EqualFold(s[:3], "utc") {
		s = s[3:]
	}
	if s == "" {
		return 0, domain.ErrInvalidOffset
	}

	hours, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.ErrInvalidOffset
	}
	if err := domain.ValidateOffset(hours); err != nil {
		return 0, err
	}
	return hours, nil
}

// recipientRef picks the first user mention of the message
func recipientRef(message *tgbotapi.Message) (domain.RecipientRef, bool) {
	for _, entity := range message.Entities {
		switch entity.Type {
		case "mention":
			if handle := entityText(message.Text, entity); handle != "" {
				return domain.HandleRef{Handle: handle}, true
			}
		case "text_mention":
			if entity.User != nil {
				return domain.ResolvedRef{UserID: entity.User.ID}, true
			}
		}
	}
	return nil, false
}

// entityText cuts an entity out of text. Entity offsets are in UTF-16 units.
func entityText(text string, entity tgbotapi.MessageEntity) string {
	units := utf16.Encode([]rune(text))
	end := entity.Offset + entity.Length
	if entity.Offset < 0 || entity.Length <= 0 || end > len(units) {
		return ""
	}
	return string(utf16.Decode(units[entity.Offset:end]))
}
