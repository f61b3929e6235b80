// Package migrations bundles the SQL schema and applies it in order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Direction selects which half of each migration pair to run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

//go:embed *.sql
var files embed.FS

// Files lists the migration file names for the direction in execution order.
func Files(direction Direction) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, errors.Wrap(err, "read migrations")
	}

	suffix := "." + string(direction) + ".sql"

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)
	if direction == Down {
		slices.Reverse(names)
	}

	return names, nil
}

// Run executes every migration for the direction against db.
func Run(ctx context.Context, db *sql.DB, direction Direction, logger *slog.Logger) (int, error) {
	if direction != Up && direction != Down {
		return 0, errors.Errorf("direction must be %q or %q, got %q", Up, Down, direction)
	}

	names, err := Files(direction)
	if err != nil {
		return 0, err
	}

	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return 0, errors.Wrapf(err, "read migration %s", name)
		}

		logger.InfoContext(ctx, "Running migration", slog.String("file", name))
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return 0, errors.Wrapf(err, "execute migration %s", name)
		}
	}

	return len(names), nil
}
