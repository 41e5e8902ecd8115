// Package migrations embeds the schema of the console's local database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
