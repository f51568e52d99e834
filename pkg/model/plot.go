package model

// Plot is a bounded survey area inside an Area. The boundary is a PostGIS
// geometry column in EPSG:4326, constrained to Polygon or MultiPolygon at
// the ingestion boundary. Reads and writes of the boundary go through raw
// SQL (ST_GeomFromGeoJSON / ST_AsGeoJSON), so the column is excluded from
// regular GORM selects and JSON output.
type Plot struct {
	PlotID          int    `gorm:"column:plot_id;primaryKey" json:"plot_id"`
	PlotName        string `gorm:"column:plot_name" json:"plot_name"`
	PlotInformation string `gorm:"column:plot_information" json:"plot_information"`
	AreaID          int    `gorm:"column:area_id" json:"area_id"`
	PlotBorder      []byte `gorm:"column:plot_border;type:geometry(Geometry,4326);->:false;<-:false" json:"-"`
}

func (Plot) TableName() string {
	return "plots"
}
