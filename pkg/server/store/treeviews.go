package store

import "github.com/odmforest/treesurvey/pkg/model"

// TreeViewsStore abstracts tree-view link storage.
type TreeViewsStore interface {
	// CreateTreeView inserts a single tree-view link.
	CreateTreeView(view *model.TreeView) error
}
