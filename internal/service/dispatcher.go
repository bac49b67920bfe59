package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/glebk/birthday-bot/internal/compose"
	"github.com/glebk/birthday-bot/internal/domain"
	"github.com/glebk/birthday-bot/internal/lang"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCallTimeout bounds a single platform call during a run
const DefaultCallTimeout = 10 * time.Second

// Dispatcher sends the birthday wishes of a single day
type Dispatcher struct {
	repo        domain.BirthdayRepository
	platform    domain.Platform
	labels      *lang.Labels
	log         *zap.Logger
	callTimeout time.Duration
	newID       func() string
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(
	repo domain.BirthdayRepository,
	platform domain.Platform,
	labels *lang.Labels,
	log *zap.Logger,
	callTimeout time.Duration,
) *Dispatcher {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Dispatcher{
		repo:        repo,
		platform:    platform,
		labels:      labels,
		log:         log,
		callTimeout: callTimeout,
		newID:       uuid.NewString,
	}
}

type recordKey struct {
	userID  int64
	groupID int64
}

// run holds the state of one pass over the day's records
type run struct {
	*Dispatcher
	log     *zap.Logger
	now     time.Time
	report  domain.RunReport
	removed map[int64]struct{}
	errs    []error
}

// Run processes every birthday falling on the UTC date of now. A failing
// record never stops the others; storage failures while cleaning up are
// joined into the returned error.
func (d *Dispatcher) Run(ctx context.Context, now time.Time) (domain.RunReport, error) {
	now = now.UTC()
	r := &run{
		Dispatcher: d,
		now:        now,
		removed:    make(map[int64]struct{}),
		report: domain.RunReport{
			RunID: d.newID(),
			Date:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		},
	}
	r.log = d.log.With(zap.String("run_id", r.report.RunID))

	records, err := d.repo.BirthdaysOn(ctx, int(now.Month()), now.Day())
	if err != nil {
		return r.report, fmt.Errorf("failed to get today's birthdays: %w", err)
	}
	r.report.Total = len(records)
	r.log.Info("Dispatch run started", zap.Int("records", len(records)))

	seen := make(map[recordKey]struct{}, len(records))
	for i := range records {
		rec := &records[i]

		key := recordKey{userID: rec.UserID, groupID: rec.GroupID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := r.removed[rec.GroupID]; ok {
			r.report.Skipped++
			continue
		}

		r.notify(ctx, rec)
	}

	return r.report, errors.Join(r.errs...)
}

func (r *run) notify(ctx context.Context, rec *domain.BirthdayRecord) {
	log := r.log.With(zap.Int64("user_id", rec.UserID), zap.Int64("group_id", rec.GroupID))

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	member, err := r.platform.GetMember(callCtx, rec.GroupID, rec.UserID)
	cancel()
	if err != nil {
		r.heal(ctx, log, rec, "get member", err)
		return
	}

	template := r.labels.Get(rec.Locale, lang.WishHappyBirthday)
	text, spans := compose.Compose(template,
		member.DisplayName(),
		strconv.Itoa(rec.AgeOn(r.now)),
		fmt.Sprintf("%d/%d/%d", r.now.Year(), int(r.now.Month()), r.now.Day()),
	)

	var mentions []domain.Mention
	if len(spans) > 0 && spans[0].Length > 0 {
		mentions = append(mentions, domain.Mention{
			Offset: spans[0].Offset,
			Length: spans[0].Length,
			Member: member,
		})
	}

	callCtx, cancel = context.WithTimeout(ctx, r.callTimeout)
	messageID, err := r.platform.SendMessage(callCtx, rec.GroupID, text, mentions)
	cancel()
	if err != nil {
		r.heal(ctx, log, rec, "send message", err)
		return
	}
	r.report.Sent++

	callCtx, cancel = context.WithTimeout(ctx, r.callTimeout)
	err = r.platform.PinMessage(callCtx, rec.GroupID, messageID)
	cancel()

	switch {
	case err == nil:
		r.report.Pinned++
	case domain.ClassifyPlatformError(err) == domain.PlatformPermissionDenied:
		r.report.PinDenied++
		log.Info("Missing permission to pin, notifying group")

		callCtx, cancel = context.WithTimeout(ctx, r.callTimeout)
		_, err = r.platform.SendMessage(callCtx, rec.GroupID, r.labels.Get(rec.Locale, lang.NoPinPermission), nil)
		cancel()
		if err != nil {
			log.Warn("Failed to send pin permission notice", zap.Error(err))
		}
	default:
		log.Warn("Failed to pin birthday message", zap.Int("message_id", messageID), zap.Error(err))
	}
}

// heal applies the outcome of a platform failure: a vanished group or member
// is deleted from the store, anything else is skipped until next year.
func (r *run) heal(ctx context.Context, log *zap.Logger, rec *domain.BirthdayRecord, stage string, err error) {
	kind := domain.ClassifyPlatformError(err)
	log = log.With(zap.String("stage", stage), zap.Stringer("kind", kind))

	switch kind {
	case domain.PlatformChatNotFound:
		if rmErr := r.repo.RemoveBirthdays(ctx, domain.ByGroup(rec.GroupID)); rmErr != nil {
			r.storageFailed(log, rmErr)
			return
		}
		r.removed[rec.GroupID] = struct{}{}
		r.report.GroupsRemoved++
		log.Info("Group removed")
	case domain.PlatformUserNotFound:
		if rmErr := r.repo.RemoveBirthdays(ctx, domain.ByUserInGroup(rec.UserID, rec.GroupID)); rmErr != nil {
			r.storageFailed(log, rmErr)
			return
		}
		r.report.RecordsRemoved++
		log.Info("User removed from group")
	default:
		r.report.Failed++
		log.Error("Platform error while sending birthday wish", zap.Error(err))
	}
}

func (r *run) storageFailed(log *zap.Logger, err error) {
	r.report.Failed++
	r.errs = append(r.errs, err)
	log.Error("Failed to remove stale birthdays", zap.Error(err))
}
