package store

import "github.com/odmforest/treesurvey/pkg/model"

// VideosStore abstracts video storage.
type VideosStore interface {
	// CreateVideo inserts a new video and fills in its generated id.
	CreateVideo(video *model.Video) error

	// ListVideos returns all videos.
	ListVideos() ([]model.Video, error)

	// FindVideoByName retrieves the first video whose name matches
	// exactly. Returns ErrNotFound if no video matches.
	FindVideoByName(name string) (*model.Video, error)
}
