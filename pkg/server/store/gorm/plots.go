package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure PlotsStore implements store.PlotsStore
var _ store.PlotsStore = (*PlotsStore)(nil)

// PlotsStore implements store.PlotsStore using GORM
type PlotsStore struct {
	db *gorm.DB
}

// NewPlotsStore creates a new PlotsStore
func NewPlotsStore(db *gorm.DB) *PlotsStore {
	return &PlotsStore{db: db}
}

// CreatePlot inserts a plot with its boundary converted from GeoJSON and
// stamped with spatial reference 4326. The boundary bytes must already be
// validated as Polygon or MultiPolygon.
func (s *PlotsStore) CreatePlot(name, information string, areaID int, boundary []byte) (int, error) {
	var plotID int
	tx := s.db.Raw(`
		INSERT INTO plots (plot_name, plot_information, area_id, plot_border)
		VALUES (?, ?, ?, ST_SetSRID(ST_GeomFromGeoJSON(?), 4326))
		RETURNING plot_id
	`, name, information, areaID, string(boundary)).Scan(&plotID)
	if tx.Error != nil {
		return 0, translate(tx.Error)
	}
	return plotID, nil
}

// ListPlots returns plot attributes only. The geometry column is excluded
// so GORM never tries to scan raw PostGIS bytes.
func (s *PlotsStore) ListPlots() ([]model.Plot, error) {
	plots := make([]model.Plot, 0)
	tx := s.db.Model(&model.Plot{}).
		Select("plot_id", "plot_name", "plot_information", "area_id").
		Find(&plots)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return plots, nil
}

// ListPlotGeometries returns every plot with its boundary rendered back to
// GeoJSON by the database.
func (s *PlotsStore) ListPlotGeometries() ([]store.PlotGeometry, error) {
	rows := make([]store.PlotGeometry, 0)
	tx := s.db.Raw(`
		SELECT plot_id, plot_name, plot_information, area_id,
		       ST_AsGeoJSON(plot_border) AS geojson
		FROM plots
	`).Scan(&rows)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return rows, nil
}
