// Package db carries the embedded SQL migrations for the survey schema.
package db

import "embed"

// Migrations holds the embedded migration files.
//
//go:embed migrations
var Migrations embed.FS
