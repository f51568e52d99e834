package model

import "time"

// Video is a recorded survey walk-through referencing an external video id.
type Video struct {
	VideoID    int        `gorm:"column:video_id;primaryKey" json:"video_id"`
	VideoName  string     `gorm:"column:video_name" json:"video_name"`
	VideoURLID string     `gorm:"column:video_url_id" json:"video_url_id"`
	RecordedAt *time.Time `gorm:"column:recorded_at" json:"recorded_at"`
}

func (Video) TableName() string {
	return "videos"
}
