package patches

import "embed"

// FS holds the goose migrations applied by db.Migrate.
//
//go:embed *.sql
var FS embed.FS
