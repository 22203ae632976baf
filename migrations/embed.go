// Package migrations содержит SQL-миграции схемы снимков для каждого поддерживаемого хранилища
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var SQLite embed.FS
