package store

import "github.com/odmforest/treesurvey/pkg/model"

// TreesStore abstracts tree storage.
type TreesStore interface {
	// CreateTrees inserts a batch of trees inside one transaction: either
	// every tree is committed or none are.
	CreateTrees(trees []model.Tree) error

	// FindTreeByODMFName retrieves the first tree whose external reference
	// name matches exactly. Returns ErrNotFound if no tree matches.
	FindTreeByODMFName(name string) (*model.Tree, error)
}
