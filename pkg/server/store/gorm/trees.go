package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure TreesStore implements store.TreesStore
var _ store.TreesStore = (*TreesStore)(nil)

// TreesStore implements store.TreesStore using GORM
type TreesStore struct {
	db *gorm.DB
}

// NewTreesStore creates a new TreesStore
func NewTreesStore(db *gorm.DB) *TreesStore {
	return &TreesStore{db: db}
}

// CreateTrees inserts the batch inside one transaction. A failure on any
// row rolls back every row.
func (s *TreesStore) CreateTrees(trees []model.Tree) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range trees {
			if err := tx.Create(&trees[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

// FindTreeByODMFName retrieves the first tree matching the external
// reference name exactly.
func (s *TreesStore) FindTreeByODMFName(name string) (*model.Tree, error) {
	var tree model.Tree
	tx := s.db.Where("odmf_name = ?", name).Order("tree_id").First(&tree)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &tree, nil
}
