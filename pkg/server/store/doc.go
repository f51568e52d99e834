// Package store defines the storage interfaces the HTTP endpoints depend
// on, together with their data transfer types and sentinel errors. The GORM
// implementations live in the gorm subpackage.
package store
