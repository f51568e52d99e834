// Package importer resolves CSV-derived tree-view rows against stored
// videos and trees and inserts the matched links.
//
// Rows are processed sequentially and independently; the batch is not
// atomic. A failing row only affects itself, and every row ends in exactly
// one outcome that feeds the final report.
package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Placeholder values stored until the source exports carry real
// millisecond offsets and durations.
const (
	placeholderMilliseconds = "000"
	placeholderDuration     = 2
)

// Row is one CSV-derived record as decoded from the request body. Field
// values arrive loosely typed (strings or numbers), so extraction happens
// per field rather than through struct tags.
type Row map[string]interface{}

// RowOutcome classifies how a single row was handled.
type RowOutcome int

const (
	// RowImported: references resolved and the link was inserted.
	RowImported RowOutcome = iota
	// RowSkipped: a required field was missing; not reported as unmatched.
	RowSkipped
	// RowUnmatched: a name lookup failed; reported with a reason.
	RowUnmatched
	// RowFailed: an unexpected failure (bad value, storage error); counted
	// as skipped without aborting the batch.
	RowFailed
)

// UnmatchedRecord reports a row whose video or tree reference did not
// resolve.
type UnmatchedRecord struct {
	VideoName string `json:"video_name"`
	ODMFName  string `json:"odmf_name"`
	Reason    string `json:"reason"`
}

// Report is the aggregate result of one import batch.
type Report struct {
	Imported  int
	Skipped   int
	Unmatched []UnmatchedRecord
}

// Message renders the report's summary line.
func (r *Report) Message() string {
	return fmt.Sprintf("Import completed: %d added, %d skipped.", r.Imported, r.Skipped)
}

// Importer matches rows against the video and tree stores.
type Importer struct {
	videos    store.VideosStore
	trees     store.TreesStore
	treeViews store.TreeViewsStore
}

// New creates an Importer over the given stores.
func New(videos store.VideosStore, trees store.TreesStore, treeViews store.TreeViewsStore) *Importer {
	return &Importer{videos: videos, trees: trees, treeViews: treeViews}
}

// Run processes the batch in order and returns the aggregate report.
// Unmatched is always non-nil so it serializes as a JSON array.
func (imp *Importer) Run(rows []Row) *Report {
	report := &Report{Unmatched: make([]UnmatchedRecord, 0)}

	for _, row := range rows {
		outcome, unmatched := imp.processRow(row)
		switch outcome {
		case RowImported:
			report.Imported++
		case RowUnmatched:
			report.Unmatched = append(report.Unmatched, *unmatched)
			report.Skipped++
		default:
			report.Skipped++
		}
	}
	return report
}

func (imp *Importer) processRow(row Row) (RowOutcome, *UnmatchedRecord) {
	videoName, ok := stringField(row, "video_name")
	if !ok {
		return RowSkipped, nil
	}
	odmfName, ok := stringField(row, "ODMF_Name")
	if !ok {
		return RowSkipped, nil
	}

	totalSeconds, present, ok := intField(row, "total_seconds")
	if !present {
		return RowSkipped, nil
	}
	if !ok {
		return RowFailed, nil
	}
	minutes, present, ok := intField(row, "minutes")
	if !present {
		return RowSkipped, nil
	}
	if !ok {
		return RowFailed, nil
	}
	seconds, present, ok := intField(row, "seconds")
	if !present {
		return RowSkipped, nil
	}
	if !ok {
		return RowFailed, nil
	}

	videoName = strings.TrimSpace(videoName)
	odmfName = strings.TrimSpace(odmfName)

	video, err := imp.videos.FindVideoByName(videoName)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		zap.S().Warnf("import row lookup failed for video %q: %v", videoName, err)
		return RowFailed, nil
	}
	tree, treeErr := imp.trees.FindTreeByODMFName(odmfName)
	if treeErr != nil && !errors.Is(treeErr, store.ErrNotFound) {
		zap.S().Warnf("import row lookup failed for tree %q: %v", odmfName, treeErr)
		return RowFailed, nil
	}

	// Video-not-found takes precedence when both lookups miss.
	if video == nil || tree == nil {
		reason := "Tree not found"
		if video == nil {
			reason = "Video not found"
		}
		return RowUnmatched, &UnmatchedRecord{
			VideoName: videoName,
			ODMFName:  odmfName,
			Reason:    reason,
		}
	}

	view := &model.TreeView{
		TreeID:            tree.TreeID,
		VideoID:           video.VideoID,
		StartSeconds:      totalSeconds,
		StartMilliseconds: placeholderMilliseconds,
		Duration:          placeholderDuration,
		Minutes:           minutes,
		Seconds:           seconds,
	}
	if err := imp.treeViews.CreateTreeView(view); err != nil {
		zap.S().Warnf("import row insert failed for video %q tree %q: %v", videoName, odmfName, err)
		return RowFailed, nil
	}
	return RowImported, nil
}

// stringField extracts a non-empty string field. Missing, null, empty and
// non-string values all read as absent.
func stringField(row Row, key string) (string, bool) {
	v, ok := row[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// intField extracts an integer field that may arrive as a JSON number or a
// numeric string. present is false when the field is missing or null; ok is
// false when a present value cannot be parsed.
func intField(row Row, key string) (value int, present bool, ok bool) {
	v, exists := row[key]
	if !exists || v == nil {
		return 0, false, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, true, false
		}
		return int(f), true, true
	default:
		return 0, true, false
	}
}
