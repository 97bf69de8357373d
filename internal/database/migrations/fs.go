package migrations

import "embed"

//go:embed sqlite/*.sql
var SqliteFS embed.FS
