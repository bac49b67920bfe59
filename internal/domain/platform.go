package domain

//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=../mocks/platform_mock.go -package=mocks

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a handle does not resolve to a user
var ErrUserNotFound = errors.New("user not found")

// Member is a user as seen inside a group
type Member struct {
	UserID    int64
	FirstName string
	LastName  string
	Username  string
}

// DisplayName returns the name used in mentions
func (m Member) DisplayName() string {
	if m.FirstName != "" {
		return m.FirstName
	}
	if m.Username != "" {
		return m.Username
	}
	return m.LastName
}

// Mention marks a text span that references a member
type Mention struct {
	Offset int
	Length int
	Member Member
}

// Platform is the messaging platform as the dispatcher sees it.
// Failures are returned as *PlatformError.
type Platform interface {
	GetMember(ctx context.Context, groupID, userID int64) (Member, error)
	SendMessage(ctx context.Context, groupID int64, text string, mentions []Mention) (int, error)
	PinMessage(ctx context.Context, groupID int64, messageID int) error
}

// UsernameResolver turns a public handle into a numeric user id
type UsernameResolver interface {
	Resolve(ctx context.Context, handle string) (int64, error)
}
