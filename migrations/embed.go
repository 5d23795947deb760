package migrations

import "embed"

// Files holds the forward-only SQL migrations applied on every startup.
//
//go:embed *.sql
var Files embed.FS
