// Package migrations embeds the goose SQL migrations of the parcels schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
