package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/GuiaBolso/darwin"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded migrations that have not run yet.
// Files are named NNN_description.sql; NNN is the darwin version.
func Migrate(db *sql.DB) error {
	migrations, err := loadMigrations(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver := darwin.NewGenericDriver(db, darwin.SqliteDialect{})
	return darwin.New(driver, migrations, nil).Migrate()
}

func loadMigrations(fsys fs.FS, dir string) ([]darwin.Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var migrations []darwin.Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		name := strings.TrimSuffix(e.Name(), ".sql")
		prefix, desc, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing version prefix", e.Name())
		}
		version, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s: invalid version: %w", e.Name(), err)
		}

		script, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", e.Name(), err)
		}

		migrations = append(migrations, darwin.Migration{
			Version:     version,
			Description: strings.ReplaceAll(desc, "_", " "),
			Script:      string(script),
		})
	}

	return migrations, nil
}
