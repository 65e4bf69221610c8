package migrations

import "embed"

// FS contains the embedded SQLite schema for companies and events.
//
//go:embed *.sql
var FS embed.FS
