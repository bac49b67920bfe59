package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glebk/birthday-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthdayRepository_AddBirthday(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	ctx := context.Background()

	record := &domain.BirthdayRecord{UserID: 1001, GroupID: -500, Locale: "en", Year: 1990, Month: 5, Day: 17}

	added, err := repo.AddBirthday(ctx, record)
	require.NoError(t, err)
	assert.True(t, added)

	again := &domain.BirthdayRecord{UserID: 1001, GroupID: -500, Locale: "it", Year: 1991, Month: 6, Day: 1}
	added, err = repo.AddBirthday(ctx, again)
	require.NoError(t, err)
	assert.False(t, added, "second add for the same user and group is a no-op")

	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE user_id = ? AND group_id = ?`, 1001, -500))

	got, err := repo.BirthdaysOn(ctx, 5, 17)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "en", got[0].Locale, "the first registration is kept")
	assert.Equal(t, 1990, got[0].Year)
}

func TestBirthdayRepository_AddBirthday_SameUserOtherGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	ctx := context.Background()

	for _, group := range []int64{-1, -2} {
		added, err := repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 7, GroupID: group, Locale: "en", Year: 2000, Month: 1, Day: 1})
		require.NoError(t, err)
		assert.True(t, added)
	}
}

func TestBirthdayRepository_AddBirthday_LooseDateValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	ctx := context.Background()

	added, err := repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 1, GroupID: -1, Locale: "en", Year: 2000, Month: 2, Day: 30})
	require.NoError(t, err)
	assert.True(t, added, "February 30 is accepted")

	added, err = repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 2, GroupID: -1, Locale: "en", Year: 2000, Month: 4, Day: 31})
	require.NoError(t, err)
	assert.True(t, added, "April 31 is accepted")

	_, err = repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 3, GroupID: -1, Locale: "en", Year: 2000, Month: 13, Day: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 3, GroupID: -1, Locale: "en", Year: 2000, Month: 1, Day: 32})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	var se *domain.StorageError
	assert.False(t, errors.As(err, &se), "validation failures are not storage errors")
}

func TestBirthdayRepository_AddBirthday_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	ctx := context.Background()

	const workers = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
		errs  []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.AddBirthday(ctx, &domain.BirthdayRecord{UserID: 55, GroupID: -9, Locale: "en", Year: 1985, Month: 8, Day: 8})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if ok {
				added++
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.Equal(t, 1, added, "exactly one concurrent add wins")
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM birthdays`))
}

func TestBirthdayRepository_AddBirthday_CapturesOffset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	tz := NewTimezoneRepository(db)
	ctx := context.Background()

	require.NoError(t, tz.SetGroupOffset(ctx, -300, 2))

	inGroup := &domain.BirthdayRecord{UserID: 1, GroupID: -300, Locale: "en", Year: 2000, Month: 3, Day: 3}
	_, err := repo.AddBirthday(ctx, inGroup)
	require.NoError(t, err)
	assert.Equal(t, 2, inGroup.UTCOffsetHours)

	require.NoError(t, tz.SetUserOffset(ctx, 2, -4))
	userOverride := &domain.BirthdayRecord{UserID: 2, GroupID: -300, Locale: "en", Year: 2000, Month: 3, Day: 3}
	_, err = repo.AddBirthday(ctx, userOverride)
	require.NoError(t, err)
	assert.Equal(t, -4, userOverride.UTCOffsetHours)

	// later preference changes do not touch stored rows
	require.NoError(t, tz.SetGroupOffset(ctx, -300, 9))
	require.NoError(t, tz.SetUserOffset(ctx, 2, 5))

	got, err := repo.BirthdaysOn(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)

	offsets := map[int64]int{}
	for _, b := range got {
		offsets[b.UserID] = b.UTCOffsetHours
	}
	assert.Equal(t, map[int64]int{1: 2, 2: -4}, offsets)
}

func TestBirthdayRepository_BirthdaysOn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	ctx := context.Background()

	records := []domain.BirthdayRecord{
		{UserID: 1, GroupID: -1, Locale: "en", Year: 2000, Month: 2, Day: 29},
		{UserID: 2, GroupID: -1, Locale: "en", Year: 2001, Month: 3, Day: 1},
		{UserID: 3, GroupID: -2, Locale: "it", Year: 2002, Month: 3, Day: 1},
		{UserID: 4, GroupID: -2, Locale: "en", Year: 2003, Month: 1, Day: 3},
	}
	for i := range records {
		_, err := repo.AddBirthday(ctx, &records[i])
		require.NoError(t, err)
	}

	got, err := repo.BirthdaysOn(ctx, 3, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, 3, b.Month)
		assert.Equal(t, 1, b.Day)
		assert.NotEqual(t, int64(1), b.UserID, "Feb 29 is not returned for Mar 1")
	}

	got, err = repo.BirthdaysOn(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, got, 1, "month and day are not swapped")
	assert.Equal(t, int64(4), got[0].UserID)

	got, err = repo.BirthdaysOn(ctx, 12, 25)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBirthdayRepository_RemoveBirthdays(t *testing.T) {
	seed := func(t *testing.T) (*Database, *BirthdayRepository) {
		db := setupTestDB(t)
		repo := NewBirthdayRepository(db)
		for _, r := range []domain.BirthdayRecord{
			{UserID: 1, GroupID: -10, Locale: "en", Year: 2000, Month: 1, Day: 1},
			{UserID: 1, GroupID: -20, Locale: "en", Year: 2000, Month: 1, Day: 1},
			{UserID: 2, GroupID: -10, Locale: "en", Year: 2000, Month: 1, Day: 1},
			{UserID: 2, GroupID: -20, Locale: "en", Year: 2000, Month: 1, Day: 1},
			{UserID: 3, GroupID: -30, Locale: "en", Year: 2000, Month: 1, Day: 1},
		} {
			r := r
			_, err := repo.AddBirthday(context.Background(), &r)
			require.NoError(t, err)
		}
		return db, repo
	}

	t.Run("Should remove a user across groups only", func(t *testing.T) {
		db, repo := seed(t)
		require.NoError(t, repo.RemoveBirthdays(context.Background(), domain.ByUser(1)))

		assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE user_id = 1`))
		assert.Equal(t, 2, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE user_id = 2`))
		assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE group_id = -10`))
	})

	t.Run("Should remove a whole group", func(t *testing.T) {
		db, repo := seed(t)
		require.NoError(t, repo.RemoveBirthdays(context.Background(), domain.ByGroup(-10)))

		assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE group_id = -10`))
		assert.Equal(t, 3, countRows(t, db, `SELECT COUNT(*) FROM birthdays`))
	})

	t.Run("Should remove exactly one row", func(t *testing.T) {
		db, repo := seed(t)
		require.NoError(t, repo.RemoveBirthdays(context.Background(), domain.ByUserInGroup(2, -20)))

		assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM birthdays WHERE user_id = 2 AND group_id = -20`))
		assert.Equal(t, 4, countRows(t, db, `SELECT COUNT(*) FROM birthdays`))
	})

	t.Run("Should succeed when nothing matches", func(t *testing.T) {
		db, repo := seed(t)
		require.NoError(t, repo.RemoveBirthdays(context.Background(), domain.ByGroup(-999)))
		require.NoError(t, repo.RemoveBirthdays(context.Background(), domain.ByUserInGroup(3, -10)))
		assert.Equal(t, 5, countRows(t, db, `SELECT COUNT(*) FROM birthdays`))
	})

	t.Run("Should reject an empty selector", func(t *testing.T) {
		_, repo := seed(t)
		assert.Error(t, repo.RemoveBirthdays(context.Background(), domain.RemoveSelector{}))
	})
}

func TestBirthdayRepository_StorageError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBirthdayRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.BirthdaysOn(context.Background(), 1, 1)
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get birthdays", se.Op)

	err = repo.RemoveBirthdays(context.Background(), domain.ByGroup(-1))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "remove birthdays by group", se.Op)

	_, err = repo.AddBirthday(context.Background(), &domain.BirthdayRecord{UserID: 1, GroupID: -1, Year: 2000, Month: 1, Day: 1})
	require.ErrorAs(t, err, &se)
}
