package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/glebk/birthday-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// telegramAPI is the part of *tgbotapi.BotAPI the bot uses
type telegramAPI interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Platform implements domain.Platform on top of the Telegram Bot API.
// Calls are throttled and abandoned once their context is done.
type Platform struct {
	api     telegramAPI
	limiter *rate.Limiter
}

// NewPlatform creates a Platform allowing ratePerSec calls per second
func NewPlatform(api telegramAPI, ratePerSec float64, burst int) *Platform {
	return &Platform{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}
}

// GetMember returns the member userID of groupID. A user that left, was
// banned, or is restricted but no longer in the chat is reported as
// PlatformUserNotFound.
func (p *Platform) GetMember(ctx context.Context, groupID, userID int64) (domain.Member, error) {
	member, err := call(ctx, p.limiter, func() (tgbotapi.ChatMember, error) {
		return p.api.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: groupID, UserID: userID},
		})
	})
	if err != nil {
		return domain.Member{}, err
	}

	if member.User == nil || !isPresent(member) {
		return domain.Member{}, &domain.PlatformError{
			Kind: domain.PlatformUserNotFound,
			Err:  errors.New("user is no longer a member"),
		}
	}

	return toMember(member.User), nil
}

// SendMessage posts text to groupID with the given mentions as text mentions
func (p *Platform) SendMessage(ctx context.Context, groupID int64, text string, mentions []domain.Mention) (int, error) {
	msg := tgbotapi.NewMessage(groupID, text)
	for _, m := range mentions {
		msg.Entities = append(msg.Entities, tgbotapi.MessageEntity{
			Type:   "text_mention",
			Offset: m.Offset,
			Length: m.Length,
			User: &tgbotapi.User{
				ID:        m.Member.UserID,
				FirstName: m.Member.FirstName,
				LastName:  m.Member.LastName,
				UserName:  m.Member.Username,
			},
		})
	}

	sent, err := call(ctx, p.limiter, func() (tgbotapi.Message, error) {
		return p.api.Send(msg)
	})
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// PinMessage pins messageID in groupID
func (p *Platform) PinMessage(ctx context.Context, groupID int64, messageID int) error {
	_, err := call(ctx, p.limiter, func() (*tgbotapi.APIResponse, error) {
		return p.api.Request(tgbotapi.PinChatMessageConfig{
			ChatID:    groupID,
			MessageID: messageID,
		})
	})
	return err
}

// call waits for the limiter, then runs fn. If ctx ends first the result of
// fn is dropped.
func call[T any](ctx context.Context, limiter *rate.Limiter, fn func() (T, error)) (T, error) {
	var zero T

	if err := limiter.Wait(ctx); err != nil {
		return zero, &domain.PlatformError{Kind: domain.PlatformOther, Err: err}
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, &domain.PlatformError{Kind: domain.PlatformOther, Err: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			return zero, classify(r.err)
		}
		return r.value, nil
	}
}

// classify turns a Telegram API error into a *domain.PlatformError
func classify(err error) *domain.PlatformError {
	var description string

	var apiErr *tgbotapi.Error
	var apiErrValue tgbotapi.Error
	switch {
	case errors.As(err, &apiErr):
		description = apiErr.Message
	case errors.As(err, &apiErrValue):
		description = apiErrValue.Message
	default:
		return &domain.PlatformError{Kind: domain.PlatformOther, Err: err}
	}

	description = strings.ToLower(description)
	kind := domain.PlatformOther
	switch {
	case strings.Contains(description, "chat not found"):
		kind = domain.PlatformChatNotFound
	case strings.Contains(description, "user not found"),
		strings.Contains(description, "member not found"),
		strings.Contains(description, "participant_id_invalid"):
		kind = domain.PlatformUserNotFound
	case strings.Contains(description, "not enough rights to manage pinned messages"),
		strings.Contains(description, "not enough rights to pin"),
		strings.Contains(description, "chat_admin_required"):
		kind = domain.PlatformPermissionDenied
	}

	return &domain.PlatformError{Kind: kind, Err: err}
}

func isPresent(member tgbotapi.ChatMember) bool {
	switch {
	case member.HasLeft(), member.WasKicked():
		return false
	case member.Status == "restricted":
		return member.IsMember
	}
	return true
}

func toMember(u *tgbotapi.User) domain.Member {
	return domain.Member{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.UserName,
	}
}
