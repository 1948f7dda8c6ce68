package database

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/config"
)

// Connect opens the read-only Postgres source.
func Connect() (*sqlx.DB, error) {
	return sqlx.Connect("pgx", config.DBDSN())
}
