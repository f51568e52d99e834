package model

// Area is a static administrative region containing plots.
type Area struct {
	AreaID          int    `gorm:"column:area_id;primaryKey" json:"area_id"`
	AreaName        string `gorm:"column:area_name" json:"area_name"`
	AreaInformation string `gorm:"column:area_information" json:"area_information"`
}

func (Area) TableName() string {
	return "areas"
}

// AreaAdmin grants one user administrative scope over one area.
type AreaAdmin struct {
	ID     int `gorm:"column:id;primaryKey" json:"id"`
	UserID int `gorm:"column:user_id" json:"user_id"`
	AreaID int `gorm:"column:area_id" json:"area_id"`
}

func (AreaAdmin) TableName() string {
	return "area_admins"
}
