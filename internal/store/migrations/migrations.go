// Package migrations embeds the reference schema of the DHT
// message-history store, used to stand up hermetic stores in tests.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
