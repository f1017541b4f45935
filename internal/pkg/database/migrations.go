package database

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

func MigrateDatabase(databaseUrl string, migrations fs.FS) error {
	db, err := sql.Open(migrationsDriver, databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(migrationsDialect); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return err
	}

	return nil
}
