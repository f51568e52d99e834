// Package model contains the GORM database models for the tree-survey
// schema: users, areas, plots, trees, videos, and tree-view links.
//
// Each model declares its table name explicitly. Optional tree attributes
// use pointer types so that absent values persist as SQL NULL.
package model
