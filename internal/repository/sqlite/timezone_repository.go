package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/glebk/birthday-bot/internal/domain"
)

// TimezoneRepository implements domain.TimezoneRepository using SQLite
type TimezoneRepository struct {
	db *Database
}

// NewTimezoneRepository creates a new TimezoneRepository
func NewTimezoneRepository(db *Database) *TimezoneRepository {
	return &TimezoneRepository{db: db}
}

// SetUserOffset creates or replaces a user's offset
func (r *TimezoneRepository) SetUserOffset(ctx context.Context, userID int64, hours int) error {
	if err := domain.ValidateOffset(hours); err != nil {
		return err
	}

	query := `
		INSERT INTO user_timezones (user_id, utc_offset_hours, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			utc_offset_hours = excluded.utc_offset_hours,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.GetDB().ExecContext(ctx, query, userID, hours); err != nil {
		return &domain.StorageError{Op: "set user timezone", Err: err}
	}

	return nil
}

// SetGroupOffset creates or replaces a group's offset
func (r *TimezoneRepository) SetGroupOffset(ctx context.Context, groupID int64, hours int) error {
	if err := domain.ValidateOffset(hours); err != nil {
		return err
	}

	query := `
		INSERT INTO group_timezones (group_id, utc_offset_hours, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(group_id) DO UPDATE SET
			utc_offset_hours = excluded.utc_offset_hours,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.GetDB().ExecContext(ctx, query, groupID, hours); err != nil {
		return &domain.StorageError{Op: "set group timezone", Err: err}
	}

	return nil
}

// GetUserOverride returns nil when the user has no override
func (r *TimezoneRepository) GetUserOverride(ctx context.Context, userID int64) (*domain.UserTimezoneOverride, error) {
	o, err := getUserOverride(ctx, r.db.GetDB(), userID)
	if err != nil {
		return nil, &domain.StorageError{Op: "get user timezone", Err: err}
	}
	return o, nil
}

// GetGroupOverride returns nil when the group has no override
func (r *TimezoneRepository) GetGroupOverride(ctx context.Context, groupID int64) (*domain.GroupTimezoneOverride, error) {
	o, err := getGroupOverride(ctx, r.db.GetDB(), groupID)
	if err != nil {
		return nil, &domain.StorageError{Op: "get group timezone", Err: err}
	}
	return o, nil
}

// EffectiveOffset resolves the offset a new birthday would be stored with
func (r *TimezoneRepository) EffectiveOffset(ctx context.Context, userID, groupID int64) (int, error) {
	offset, err := effectiveOffset(ctx, r.db.GetDB(), userID, groupID)
	if err != nil {
		return 0, &domain.StorageError{Op: "resolve timezone", Err: err}
	}
	return offset, nil
}

func effectiveOffset(ctx context.Context, conn dbConn, userID, groupID int64) (int, error) {
	user, err := getUserOverride(ctx, conn, userID)
	if err != nil {
		return 0, err
	}
	if user != nil {
		return domain.EffectiveOffset(user, nil), nil
	}

	group, err := getGroupOverride(ctx, conn, groupID)
	if err != nil {
		return 0, err
	}
	return domain.EffectiveOffset(nil, group), nil
}

func getUserOverride(ctx context.Context, conn dbConn, userID int64) (*domain.UserTimezoneOverride, error) {
	o := &domain.UserTimezoneOverride{}

	err := conn.QueryRowContext(ctx,
		`SELECT user_id, utc_offset_hours FROM user_timezones WHERE user_id = ?`,
		userID,
	).Scan(&o.UserID, &o.UTCOffsetHours)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

func getGroupOverride(ctx context.Context, conn dbConn, groupID int64) (*domain.GroupTimezoneOverride, error) {
	o := &domain.GroupTimezoneOverride{}

	err := conn.QueryRowContext(ctx,
		`SELECT group_id, utc_offset_hours FROM group_timezones WHERE group_id = ?`,
		groupID,
	).Scan(&o.GroupID, &o.UTCOffsetHours)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}
