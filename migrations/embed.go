// Package migrations embeds the goose SQL migrations so both the application
// startup and the test harness apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
