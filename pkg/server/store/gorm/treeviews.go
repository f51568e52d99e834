package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure TreeViewsStore implements store.TreeViewsStore
var _ store.TreeViewsStore = (*TreeViewsStore)(nil)

// TreeViewsStore implements store.TreeViewsStore using GORM
type TreeViewsStore struct {
	db *gorm.DB
}

// NewTreeViewsStore creates a new TreeViewsStore
func NewTreeViewsStore(db *gorm.DB) *TreeViewsStore {
	return &TreeViewsStore{db: db}
}

// CreateTreeView inserts a single tree-view link.
func (s *TreeViewsStore) CreateTreeView(view *model.TreeView) error {
	return translate(s.db.Create(view).Error)
}
