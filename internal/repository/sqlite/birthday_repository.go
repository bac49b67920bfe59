package sqlite

import (
	"context"
	"fmt"

	"github.com/glebk/birthday-bot/internal/domain"
)

// BirthdayRepository implements domain.BirthdayRepository using SQLite
type BirthdayRepository struct {
	db *Database
}

// NewBirthdayRepository creates a new BirthdayRepository
func NewBirthdayRepository(db *Database) *BirthdayRepository {
	return &BirthdayRepository{db: db}
}

// AddBirthday stores a birthday unless the user already has one in the group.
// The effective offset is resolved inside the same transaction as the insert;
// the UNIQUE(user_id, group_id) constraint decides whether the row is new.
func (r *BirthdayRepository) AddBirthday(ctx context.Context, record *domain.BirthdayRecord) (bool, error) {
	if err := record.Validate(); err != nil {
		return false, err
	}

	tx, err := r.db.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return false, &domain.StorageError{Op: "begin add birthday", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	offset, err := effectiveOffset(ctx, tx, record.UserID, record.GroupID)
	if err != nil {
		return false, &domain.StorageError{Op: "resolve timezone", Err: err}
	}

	query := `
		INSERT INTO birthdays (user_id, group_id, locale, year, month, day, utc_offset_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, group_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, query,
		record.UserID,
		record.GroupID,
		record.Locale,
		record.Year,
		record.Month,
		record.Day,
		offset,
	)
	if err != nil {
		return false, &domain.StorageError{Op: "add birthday", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, &domain.StorageError{Op: "add birthday", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return false, &domain.StorageError{Op: "commit add birthday", Err: err}
	}

	if affected == 0 {
		return false, nil
	}

	record.UTCOffsetHours = offset
	return true, nil
}

// RemoveBirthdays deletes the rows matched by selector. Matching nothing is not an error.
func (r *BirthdayRepository) RemoveBirthdays(ctx context.Context, selector domain.RemoveSelector) error {
	var (
		query string
		args  []any
	)

	switch {
	case selector.IsGroup():
		query = `DELETE FROM birthdays WHERE group_id = ?`
		args = []any{selector.GroupID}
	case selector.IsUser():
		query = `DELETE FROM birthdays WHERE user_id = ?`
		args = []any{selector.UserID}
	case selector.IsUserInGroup():
		query = `DELETE FROM birthdays WHERE user_id = ? AND group_id = ?`
		args = []any{selector.UserID, selector.GroupID}
	default:
		return fmt.Errorf("unknown remove selector %q", selector)
	}

	if _, err := r.db.GetDB().ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "remove birthdays by " + selector.String(), Err: err}
	}

	return nil
}

// BirthdaysOn returns every birthday stored for month/day
func (r *BirthdayRepository) BirthdaysOn(ctx context.Context, month, day int) ([]domain.BirthdayRecord, error) {
	query := `
		SELECT user_id, group_id, locale, year, month, day, utc_offset_hours, created_at
		FROM birthdays
		WHERE month = ? AND day = ?
	`

	rows, err := r.db.GetDB().QueryContext(ctx, query, month, day)
	if err != nil {
		return nil, &domain.StorageError{Op: "get birthdays", Err: err}
	}
	defer rows.Close()

	var birthdays []domain.BirthdayRecord

	for rows.Next() {
		var b domain.BirthdayRecord

		err := rows.Scan(
			&b.UserID,
			&b.GroupID,
			&b.Locale,
			&b.Year,
			&b.Month,
			&b.Day,
			&b.UTCOffsetHours,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan birthday", Err: err}
		}

		birthdays = append(birthdays, b)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "get birthdays", Err: err}
	}

	return birthdays, nil
}
