package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure VideosStore implements store.VideosStore
var _ store.VideosStore = (*VideosStore)(nil)

// VideosStore implements store.VideosStore using GORM
type VideosStore struct {
	db *gorm.DB
}

// NewVideosStore creates a new VideosStore
func NewVideosStore(db *gorm.DB) *VideosStore {
	return &VideosStore{db: db}
}

// CreateVideo inserts a video and fills in its generated id.
func (s *VideosStore) CreateVideo(video *model.Video) error {
	return translate(s.db.Create(video).Error)
}

// ListVideos returns all videos.
func (s *VideosStore) ListVideos() ([]model.Video, error) {
	videos := make([]model.Video, 0)
	tx := s.db.Find(&videos)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return videos, nil
}

// FindVideoByName retrieves the first video matching the name exactly.
func (s *VideosStore) FindVideoByName(name string) (*model.Video, error) {
	var video model.Video
	tx := s.db.Where("video_name = ?", name).Order("video_id").First(&video)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &video, nil
}
