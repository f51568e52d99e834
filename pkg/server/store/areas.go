package store

import "github.com/odmforest/treesurvey/pkg/model"

// AreasStore abstracts area and area-admin lookups. Both tables are static
// reference data; only reads are exposed.
type AreasStore interface {
	// FindAreaByID retrieves an area by id. Returns ErrNotFound if absent.
	FindAreaByID(areaID int) (*model.Area, error)

	// FindAdminAreaID returns the area id of the first area-admin grant
	// for the user. Returns ErrNotFound if the user administers no area.
	FindAdminAreaID(userID int) (int, error)
}
