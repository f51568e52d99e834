package model

// TreeView records that a tree appears in a video starting at a timestamp.
// Rows are created only by the bulk importer, which resolves tree and video
// ids from their human-readable names first.
//
// StartMilliseconds and Duration carry fixed placeholder values until the
// source CSV exports carry real millisecond offsets and durations.
type TreeView struct {
	TreeViewID        int    `gorm:"column:tree_view_id;primaryKey" json:"tree_view_id"`
	TreeID            int    `gorm:"column:tree_id" json:"tree_id"`
	VideoID           int    `gorm:"column:video_id" json:"video_id"`
	StartSeconds      int    `gorm:"column:start_seconds" json:"start_seconds"`
	StartMilliseconds string `gorm:"column:start_milliseconds" json:"start_milliseconds"`
	Duration          int    `gorm:"column:duration" json:"duration"`
	Minutes           int    `gorm:"column:minutes" json:"minutes"`
	Seconds           int    `gorm:"column:seconds" json:"seconds"`
}

func (TreeView) TableName() string {
	return "tree_views"
}
