// Package database holds the schema migrations compiled into the binaries.
package database

import "embed"

// Migrations contains the versioned *.up.sql / *.down.sql files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
