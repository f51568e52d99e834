// Package gorm implements the store interfaces using GORM over PostgreSQL.
//
// Postgres unique-violation errors (SQLSTATE 23505) are translated to
// store.ErrConflict and gorm.ErrRecordNotFound to store.ErrNotFound, so the
// endpoints never see driver-level errors for those two conditions.
//
// Plot boundaries bypass GORM's column mapping: inserts go through
// ST_SetSRID(ST_GeomFromGeoJSON(...), 4326) and reads through
// ST_AsGeoJSON(...), both as raw SQL.
package gorm
