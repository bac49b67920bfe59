package domain

//go:generate go run go.uber.org/mock/mockgen -source=birthday.go -destination=../mocks/birthday_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidDate is returned when a birthday's month or day is out of range
var ErrInvalidDate = errors.New("invalid date")

// BirthdayRecord ties a user to a group on a given date.
// UTCOffsetHours is captured once when the record is added and never changes.
type BirthdayRecord struct {
	UserID         int64
	GroupID        int64
	Locale         string
	Year           int
	Month          int
	Day            int
	UTCOffsetHours int
	CreatedAt      time.Time
}

// Validate checks month and day ranges only. Day 31 in a 30-day month and
// February 30 are accepted.
func (b *BirthdayRecord) Validate() error {
	if b.Month < 1 || b.Month > 12 || b.Day < 1 || b.Day > 31 {
		return ErrInvalidDate
	}
	return nil
}

// AgeOn returns the age the user turns in the year of t
func (b *BirthdayRecord) AgeOn(t time.Time) int {
	return t.Year() - b.Year
}

// RemoveSelector picks which rows RemoveBirthdays deletes
type RemoveSelector struct {
	kind    removeKind
	UserID  int64
	GroupID int64
}

type removeKind int

const (
	removeByGroup removeKind = iota + 1
	removeByUser
	removeByUserInGroup
)

// ByGroup selects every birthday registered in a group
func ByGroup(groupID int64) RemoveSelector {
	return RemoveSelector{kind: removeByGroup, GroupID: groupID}
}

// ByUser selects a user's birthdays across every group
func ByUser(userID int64) RemoveSelector {
	return RemoveSelector{kind: removeByUser, UserID: userID}
}

// ByUserInGroup selects exactly one birthday
func ByUserInGroup(userID, groupID int64) RemoveSelector {
	return RemoveSelector{kind: removeByUserInGroup, UserID: userID, GroupID: groupID}
}

func (s RemoveSelector) IsGroup() bool       { return s.kind == removeByGroup }
func (s RemoveSelector) IsUser() bool        { return s.kind == removeByUser }
func (s RemoveSelector) IsUserInGroup() bool { return s.kind == removeByUserInGroup }

func (s RemoveSelector) String() string {
	switch s.kind {
	case removeByGroup:
		return "group"
	case removeByUser:
		return "user"
	case removeByUserInGroup:
		return "user_in_group"
	default:
		return "unknown"
	}
}

// BirthdayRepository defines the interface for birthday storage
type BirthdayRepository interface {
	AddBirthday(ctx context.Context, record *BirthdayRecord) (bool, error)
	RemoveBirthdays(ctx context.Context, selector RemoveSelector) error
	BirthdaysOn(ctx context.Context, month, day int) ([]BirthdayRecord, error)
}
