package model

// Tree is a single surveyed tree inside a plot. ODMF fields reference the
// external dataset the survey rows were exported from.
type Tree struct {
	TreeID      int      `gorm:"column:tree_id;primaryKey" json:"tree_id"`
	ODMFName    *string  `gorm:"column:odmf_name" json:"odmf_name"`
	TreeNo      int      `gorm:"column:tree_no" json:"tree_no"`
	Species     *string  `gorm:"column:species" json:"species"`
	SpeciesCode *string  `gorm:"column:species_code" json:"species_code"`
	RowID       *int     `gorm:"column:row_id" json:"row_id"`
	Latitude    *float64 `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64 `gorm:"column:longitude" json:"longitude"`
	Elevation   *float64 `gorm:"column:elevation" json:"elevation"`
	Height      *float64 `gorm:"column:height" json:"height"`
	YearPlanted *int     `gorm:"column:year_planted" json:"year_planted"`
	Comment     *string  `gorm:"column:comment" json:"comment"`
	ODMFID      *int     `gorm:"column:odmf_id" json:"odmf_id"`
	TreePlot    *int     `gorm:"column:tree_plot" json:"tree_plot"`
	TreeLetter  *string  `gorm:"column:tree_letter" json:"tree_letter"`
	PlotID      int      `gorm:"column:plot_id" json:"plot_id"`
}

func (Tree) TableName() string {
	return "trees"
}
