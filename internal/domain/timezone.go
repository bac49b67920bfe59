package domain

//go:generate go run go.uber.org/mock/mockgen -source=timezone.go -destination=../mocks/timezone_mock.go -package=mocks

import (
	"context"
	"errors"
)

// Offsets outside this range are rejected by the preference commands
const (
	MinUTCOffset = -12
	MaxUTCOffset = 14
)

// ErrInvalidOffset is returned for offsets outside MinUTCOffset..MaxUTCOffset
var ErrInvalidOffset = errors.New("invalid utc offset")

// UserTimezoneOverride is a user's preferred hour offset
type UserTimezoneOverride struct {
	UserID         int64
	UTCOffsetHours int
}

// GroupTimezoneOverride is a group's default hour offset
type GroupTimezoneOverride struct {
	GroupID        int64
	UTCOffsetHours int
}

// ValidateOffset checks that an hour offset is a real UTC offset
func ValidateOffset(hours int) error {
	if hours < MinUTCOffset || hours > MaxUTCOffset {
		return ErrInvalidOffset
	}
	return nil
}

// EffectiveOffset applies the override precedence: the user's own offset,
// then the group's, then zero. A nil override means none is set.
func EffectiveOffset(user *UserTimezoneOverride, group *GroupTimezoneOverride) int {
	if user != nil {
		return user.UTCOffsetHours
	}
	if group != nil {
		return group.UTCOffsetHours
	}
	return 0
}

// TimezoneRepository defines the interface for time-zone override storage
type TimezoneRepository interface {
	SetUserOffset(ctx context.Context, userID int64, hours int) error
	SetGroupOffset(ctx context.Context, groupID int64, hours int) error
	GetUserOverride(ctx context.Context, userID int64) (*UserTimezoneOverride, error)
	GetGroupOverride(ctx context.Context, groupID int64) (*GroupTimezoneOverride, error)
	EffectiveOffset(ctx context.Context, userID, groupID int64) (int, error)
}
