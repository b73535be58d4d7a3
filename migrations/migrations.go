// Package migrations embeds the SQL schema migrations and applies them with
// golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5 database driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// ErrUnknownDirection indicates an unsupported migration direction.
var ErrUnknownDirection = errors.New("migrations: direction must be up or down")

// Run applies all embedded migrations in the given direction ("up" or
// "down") against the database URL. A database that is already at the
// requested version is not an error.
func Run(databaseURL, direction string) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("migrations: load source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(databaseURL))
	if err != nil {
		return fmt.Errorf("migrations: open database: %w", err)
	}
	defer func() {
		//nolint:errcheck // best effort
		m.Close()
	}()

	switch strings.TrimSpace(direction) {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return ErrUnknownDirection
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations: apply %s: %w", direction, err)
	}

	return nil
}

// pgx5URL rewrites a postgres:// URL to the scheme registered by the
// golang-migrate pgx/v5 driver.
func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
