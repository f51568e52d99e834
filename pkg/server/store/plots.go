package store

import "github.com/odmforest/treesurvey/pkg/model"

// PlotGeometry is a plot row joined with its boundary rendered back to
// GeoJSON by the database.
type PlotGeometry struct {
	PlotID          int    `gorm:"column:plot_id"`
	PlotName        string `gorm:"column:plot_name"`
	PlotInformation string `gorm:"column:plot_information"`
	AreaID          int    `gorm:"column:area_id"`
	GeoJSON         []byte `gorm:"column:geojson"`
}

// PlotsStore abstracts plot storage. The boundary travels as GeoJSON bytes;
// validation of the geometry type happens before the store is called.
type PlotsStore interface {
	// CreatePlot inserts a plot with its boundary stored in EPSG:4326 and
	// returns the generated plot id.
	CreatePlot(name, information string, areaID int, boundary []byte) (int, error)

	// ListPlots returns all plots without geometry.
	ListPlots() ([]model.Plot, error)

	// ListPlotGeometries returns all plots with their boundaries rendered
	// as GeoJSON.
	ListPlotGeometries() ([]PlotGeometry, error)
}
