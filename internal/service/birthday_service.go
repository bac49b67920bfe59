package service

import (
	"context"
	"fmt"

	"github.com/glebk/birthday-bot/internal/domain"
)

// BirthdayService handles the business logic behind the chat commands
type BirthdayService struct {
	birthdays domain.BirthdayRepository
	timezones domain.TimezoneRepository
	resolver  domain.UsernameResolver
}

// NewBirthdayService creates a new BirthdayService
func NewBirthdayService(
	birthdays domain.BirthdayRepository,
	timezones domain.TimezoneRepository,
	resolver domain.UsernameResolver,
) *BirthdayService {
	return &BirthdayService{
		birthdays: birthdays,
		timezones: timezones,
		resolver:  resolver,
	}
}

// AddBirthday registers the birthday of the referenced user in a group.
// It reports false when the user already has a birthday there.
func (s *BirthdayService) AddBirthday(
	ctx context.Context,
	ref domain.RecipientRef,
	groupID int64,
	locale string,
	year, month, day int,
) (bool, error) {
	record := &domain.BirthdayRecord{
		GroupID: groupID,
		Locale:  locale,
		Year:    year,
		Month:   month,
		Day:     day,
	}

	// Reject bad dates before spending a lookup on the handle
	if err := record.Validate(); err != nil {
		return false, err
	}

	userID, err := domain.ResolveRecipient(ctx, s.resolver, ref)
	if err != nil {
		return false, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	record.UserID = userID

	return s.birthdays.AddBirthday(ctx, record)
}

// RemoveBirthday removes the user's birthday from one group
func (s *BirthdayService) RemoveBirthday(ctx context.Context, userID, groupID int64) error {
	return s.birthdays.RemoveBirthdays(ctx, domain.ByUserInGroup(userID, groupID))
}

// RemoveGroup forgets every birthday registered in a group
func (s *BirthdayService) RemoveGroup(ctx context.Context, groupID int64) error {
	return s.birthdays.RemoveBirthdays(ctx, domain.ByGroup(groupID))
}

// RemoveAllBirthdays removes the user's birthdays from every group
func (s *BirthdayService) RemoveAllBirthdays(ctx context.Context, userID int64) error {
	return s.birthdays.RemoveBirthdays(ctx, domain.ByUser(userID))
}

// SetUserTimezone stores the user's offset for birthdays added from now on
func (s *BirthdayService) SetUserTimezone(ctx context.Context, userID int64, hours int) error {
	if err := domain.ValidateOffset(hours); err != nil {
		return err
	}
	return s.timezones.SetUserOffset(ctx, userID, hours)
}

// SetGroupTimezone stores the group's default offset
func (s *BirthdayService) SetGroupTimezone(ctx context.Context, groupID int64, hours int) error {
	if err := domain.ValidateOffset(hours); err != nil {
		return err
	}
	return s.timezones.SetGroupOffset(ctx, groupID, hours)
}

// EffectiveTimezone returns the offset a new birthday of userID in groupID would get
func (s *BirthdayService) EffectiveTimezone(ctx context.Context, userID, groupID int64) (int, error) {
	return s.timezones.EffectiveOffset(ctx, userID, groupID)
}
