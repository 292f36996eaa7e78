package database

import "embed"

// MigrationsFS holds the SQL migrations consumed by cmd/migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
