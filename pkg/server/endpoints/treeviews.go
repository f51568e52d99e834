package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/odmforest/treesurvey/pkg/importer"
	"github.com/odmforest/treesurvey/pkg/server"
)

func RegisterTreeViewsEndpoints(s *server.Server) {
	router := s.Router

	imp := importer.New(s.VideosStore, s.TreesStore, s.TreeViewsStore)

	// POST /tree-view/import - Bulk import CSV-derived tree-view rows
	router.HandleFunc("/tree-view/import", handleImportTreeViews(imp)).Methods("POST")
}

// ImportRequest represents a tree-view import request body. Data is kept
// raw so a non-array payload can be rejected explicitly.
type ImportRequest struct {
	Data json.RawMessage `json:"data"`
}

func handleImportTreeViews(imp *importer.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid CSV data")
			return
		}
		defer func() { _ = r.Body.Close() }()

		// A missing or null data field unmarshals cleanly into a nil
		// slice; only an actual array is acceptable.
		if len(req.Data) == 0 || string(req.Data) == "null" {
			respondWithError(w, http.StatusBadRequest, "Invalid CSV data")
			return
		}
		var rows []importer.Row
		if err := json.Unmarshal(req.Data, &rows); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid CSV data")
			return
		}

		report := imp.Run(rows)
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message":   report.Message(),
			"unmatched": report.Unmatched,
		})
	}
}
