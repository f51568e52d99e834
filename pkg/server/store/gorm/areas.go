package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure AreasStore implements store.AreasStore
var _ store.AreasStore = (*AreasStore)(nil)

// AreasStore implements store.AreasStore using GORM
type AreasStore struct {
	db *gorm.DB
}

// NewAreasStore creates a new AreasStore
func NewAreasStore(db *gorm.DB) *AreasStore {
	return &AreasStore{db: db}
}

// FindAreaByID retrieves an area by primary key.
func (s *AreasStore) FindAreaByID(areaID int) (*model.Area, error) {
	var area model.Area
	tx := s.db.Where("area_id = ?", areaID).First(&area)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &area, nil
}

// FindAdminAreaID returns the area id of the user's first area-admin grant.
// Only the first match is consulted; there is no disambiguation for users
// administering several areas.
func (s *AreasStore) FindAdminAreaID(userID int) (int, error) {
	var admin model.AreaAdmin
	tx := s.db.Where("user_id = ?", userID).Order("id").First(&admin)
	if tx.Error != nil {
		return 0, translate(tx.Error)
	}
	return admin.AreaID, nil
}
