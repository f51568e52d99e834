package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterVideosEndpoints(s *server.Server) {
	router := s.Router
	videosStore := s.VideosStore

	// POST /video - Register a video
	router.HandleFunc("/video", handleCreateVideo(videosStore)).Methods("POST")

	// GET /video - List videos
	router.HandleFunc("/video", handleListVideos(videosStore)).Methods("GET")
}

// CreateVideoRequest represents a video registration request body.
// RecordedAt is an optional RFC 3339 timestamp.
type CreateVideoRequest struct {
	VideoName  string `json:"video_name"`
	VideoURLID string `json:"video_url_id"`
	RecordedAt string `json:"recorded_at"`
}

func handleCreateVideo(videosStore store.VideosStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		var recordedAt *time.Time
		if req.RecordedAt != "" {
			t, err := time.Parse(time.RFC3339, req.RecordedAt)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to insert video data")
				return
			}
			recordedAt = &t
		}

		video := &model.Video{
			VideoName:  req.VideoName,
			VideoURLID: req.VideoURLID,
			RecordedAt: recordedAt,
		}
		if err := videosStore.CreateVideo(video); err != nil {
			zap.S().Warnf("video insert failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to insert video data")
			return
		}

		respondWithJSON(w, http.StatusCreated, video)
	}
}

func handleListVideos(videosStore store.VideosStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := videosStore.ListVideos()
		if err != nil {
			zap.S().Warnf("video list failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch videos")
			return
		}

		respondWithJSON(w, http.StatusOK, videos)
	}
}
